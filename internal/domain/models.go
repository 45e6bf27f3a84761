package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type Admin struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
}

type User struct {
	ID                int64
	CreatedAt         time.Time
	Company           string
	Email             string
	EncryptedPassword string
}

type Part struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
}

type Order struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	PartID    int64
	Quantity  int32
	Amount    decimal.Decimal
	Status    OrderStatusType
}

// OrderDetail модель для чтения: заказ вместе с названием детали и данными
// юзера. Поля юзера заполняются только в админских выборках.
type OrderDetail struct {
	Order
	PartName    string
	UserEmail   string
	UserCompany string
}
