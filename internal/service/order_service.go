package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

const minOrderQuantity int32 = 1

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

type CheckoutArgs struct {
	UserID   int64
	PartID   int64
	Quantity int32
}

// Checkout оформляет заказ: количество меньше единицы поднимается до единицы,
// сумма фиксируется как цена детали в момент оформления умноженная на
// количество, статус всегда pending. Чтение цены и вставка заказа идут в
// одной транзакции, чтобы сумма считалась по согласованной цене. Возвращает
// domain.ErrRecordNotFound если детали не существует.
func (o *OrderService) Checkout(ctx context.Context, args CheckoutArgs) (*domain.Order, error) {
	quantity := args.Quantity
	if quantity < minOrderQuantity {
		quantity = minOrderQuantity
	}

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		partRepo, partRepoErr := uow.GetAs[PartRepository](tx, uow.RepositoryName(repoargs.PartRepoName))
		if partRepoErr != nil {
			return partRepoErr //nolint:wrapcheck
		}

		part, partErr := partRepo.FindByID(c, args.PartID)
		if partErr != nil {
			return partErr //nolint:wrapcheck
		}

		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		var createErr error
		order, createErr = orderRepo.CreateOrder(c, repoargs.CreateOrder{
			UserID:   args.UserID,
			PartID:   part.ID,
			Quantity: quantity,
			Amount:   part.Price.Mul(decimal.NewFromInt32(quantity)),
			Status:   domain.OrderStatusPending,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("checking out order: %w", txErr)
	}
	return order, nil
}

// RecentByUserID возвращает не более limit последних заказов юзера, любые
// статусы, новые первыми.
func (o *OrderService) RecentByUserID(ctx context.Context, userID int64, limit uint) ([]domain.OrderDetail, error) {
	orders, err := o.orderRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// OrderHistory история заказов юзера, разбитая на текущие и завершенные.
type OrderHistory struct {
	Current  []domain.OrderDetail
	Previous []domain.OrderDetail
}

// HistoryByUserID разбивает заказы юзера на два непересекающихся сегмента:
// текущие (pending, active) и завершенные (cancelled, complete). Каждый
// сегмент отсортирован по дате создания по убыванию.
func (o *OrderService) HistoryByUserID(ctx context.Context, userID int64) (*OrderHistory, error) {
	orders, err := o.orderRepo.GetByUserID(ctx, userID, 0)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	history := OrderHistory{}
	for _, order := range orders {
		if domain.ScopeOf(order.Status) == domain.OrderScopeCurrent {
			history.Current = append(history.Current, order)
		} else {
			history.Previous = append(history.Previous, order)
		}
	}
	return &history, nil
}

// GetByScope возвращает заказы всех юзеров принадлежащие сегменту, новые
// первыми, с данными юзера и детали.
func (o *OrderService) GetByScope(ctx context.Context, scope domain.OrderScope) ([]domain.OrderDetail, error) {
	orders, err := o.orderRepo.GetAllWithDetails(ctx, scope.Statuses())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// GetAllSorted возвращает заказы всех юзеров, упорядоченные по выбранному
// ключу. Выборка из репозитория всегда идет новые-первыми, поэтому
// стабильная пересортировка по компании или статусу сохраняет
// новые-первыми как вторичный порядок. Статусы ранжируются таблицей
// приоритетов domain.OrderStatusType.Rank.
func (o *OrderService) GetAllSorted(ctx context.Context, key domain.OrderSortKey) ([]domain.OrderDetail, error) {
	orders, err := o.orderRepo.GetAllWithDetails(ctx, nil)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	switch key {
	case domain.OrderSortByCompany:
		slices.SortStableFunc(orders, func(a, b domain.OrderDetail) int {
			return strings.Compare(a.UserCompany, b.UserCompany)
		})
	case domain.OrderSortByStatus:
		slices.SortStableFunc(orders, func(a, b domain.OrderDetail) int {
			return a.Status.Rank() - b.Status.Rank()
		})
	case domain.OrderSortByDate:
	default:
		// неизвестный ключ равен сортировке по дате.
	}
	return orders, nil
}

// FindDetailByID возвращает заказ с данными юзера и детали или
// domain.ErrRecordNotFound.
func (o *OrderService) FindDetailByID(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	order, err := o.orderRepo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// UpdateStatus переводит заказ в новый статус. Статус вне перечисления
// отклоняется с domain.ErrInvalidOrderStatus без обращения к базе: ни
// статус ни updated_at не меняются.
func (o *OrderService) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatusType) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("updating status of order %d: %w", orderID, domain.ErrInvalidOrderStatus)
	}

	order, err := o.orderRepo.UpdateStatus(ctx, repoargs.UpdateOrderStatus{
		OrderID: orderID,
		Status:  status,
	})
	if err != nil {
		return nil, fmt.Errorf("updating status of order %d: %w", orderID, err)
	}
	return order, nil
}
