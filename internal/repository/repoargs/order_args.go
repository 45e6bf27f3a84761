package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/parts-shop/internal/domain"
)

type CreateOrder struct {
	UserID   int64
	PartID   int64
	Quantity int32
	Amount   decimal.Decimal
	Status   domain.OrderStatusType
}

type UpdateOrderStatus struct {
	OrderID int64
	Status  domain.OrderStatusType
}
