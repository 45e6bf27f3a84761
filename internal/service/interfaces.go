package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, id int64, encryptedPassword string) (*domain.Admin, error)
}

type PartRepository interface {
	GetAll(ctx context.Context) ([]domain.Part, error)
	FindByID(ctx context.Context, id int64) (*domain.Part, error)
	CreatePart(ctx context.Context, name, description string, price decimal.Decimal) (*domain.Part, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64, limit uint) ([]domain.OrderDetail, error)
	GetAllWithDetails(ctx context.Context, statuses []domain.OrderStatusType) ([]domain.OrderDetail, error)
	FindDetailByID(ctx context.Context, id int64) (*domain.OrderDetail, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error)
}
