package web

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

type AdminServicer interface {
	Login(ctx context.Context, args service.LoginAdminArgs) (*domain.Admin, error)
	ResetPassword(ctx context.Context, args service.ResetPasswordArgs) (*domain.Admin, error)
}

type PartServicer interface {
	GetAll(ctx context.Context) ([]domain.Part, error)
}

type OrderServicer interface {
	Checkout(ctx context.Context, args service.CheckoutArgs) (*domain.Order, error)
	RecentByUserID(ctx context.Context, userID int64, limit uint) ([]domain.OrderDetail, error)
	HistoryByUserID(ctx context.Context, userID int64) (*service.OrderHistory, error)
	GetByScope(ctx context.Context, scope domain.OrderScope) ([]domain.OrderDetail, error)
	GetAllSorted(ctx context.Context, key domain.OrderSortKey) ([]domain.OrderDetail, error)
	FindDetailByID(ctx context.Context, id int64) (*domain.OrderDetail, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatusType) (*domain.Order, error)
}
