package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/internal/service/mocks"
	"github.com/fsdevblog/parts-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/parts-shop/pkg/uow/mocks"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockOrderRepo *mocks.MockOrderRepository
	mockPartRepo  *mocks.MockPartRepository
	orderService  *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.mockPartRepo = mocks.NewMockPartRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

// mockTXRepos подключает репозитории к транзакции и прокидывает колбек Do
// через мок транзакции.
func (s *OrderServiceTestSuite) mockTXRepos() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PartRepoName)).
		Return(s.mockPartRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *OrderServiceTestSuite) TestCheckout() {
	s.mockTXRepos()

	price := decimal.RequireFromString("19.99")
	part := domain.Part{
		ID:    10,
		Name:  "Widget A",
		Price: price,
	}

	s.mockPartRepo.EXPECT().FindByID(gomock.Any(), part.ID).
		Return(&part, nil).AnyTimes()
	s.mockPartRepo.EXPECT().FindByID(gomock.Any(), int64(999)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name         string
		args         CheckoutArgs
		wantErr      error
		wantQuantity int32
		wantAmount   decimal.Decimal
	}{
		{
			name:         "ok",
			args:         CheckoutArgs{UserID: 1, PartID: part.ID, Quantity: 3},
			wantQuantity: 3,
			wantAmount:   price.Mul(decimal.NewFromInt32(3)),
		},
		{
			name:         "quantity below minimum is raised to one",
			args:         CheckoutArgs{UserID: 1, PartID: part.ID, Quantity: 0},
			wantQuantity: 1,
			wantAmount:   price,
		},
		{
			name:    "unknown part",
			args:    CheckoutArgs{UserID: 1, PartID: 999, Quantity: 1},
			wantErr: domain.ErrRecordNotFound,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			if t.wantErr == nil {
				s.mockOrderRepo.EXPECT().
					CreateOrder(gomock.Any(), gomock.Eq(repoargs.CreateOrder{
						UserID:   t.args.UserID,
						PartID:   part.ID,
						Quantity: t.wantQuantity,
						Amount:   t.wantAmount,
						Status:   domain.OrderStatusPending,
					})).
					DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
						return &domain.Order{
							ID:       gofakeit.Int64(),
							UserID:   args.UserID,
							PartID:   args.PartID,
							Quantity: args.Quantity,
							Amount:   args.Amount,
							Status:   args.Status,
						}, nil
					})
			}

			order, err := s.orderService.Checkout(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(order)
				s.Equal(t.wantQuantity, order.Quantity)
				s.True(t.wantAmount.Equal(order.Amount))
				s.Equal(domain.OrderStatusPending, order.Status)
			}
		})
	}
}

func (s *OrderServiceTestSuite) TestHistoryByUserID() {
	userID := int64(7)

	orders := []domain.OrderDetail{
		{Order: domain.Order{ID: 4, Status: domain.OrderStatusActive}},
		{Order: domain.Order{ID: 3, Status: domain.OrderStatusComplete}},
		{Order: domain.Order{ID: 2, Status: domain.OrderStatusPending}},
		{Order: domain.Order{ID: 1, Status: domain.OrderStatusCancelled}},
	}

	s.mockOrderRepo.EXPECT().GetByUserID(gomock.Any(), userID, uint(0)).
		Return(orders, nil)

	history, err := s.orderService.HistoryByUserID(s.T().Context(), userID)
	s.Require().NoError(err)

	currentIDs := make([]int64, 0, len(history.Current))
	for _, o := range history.Current {
		currentIDs = append(currentIDs, o.ID)
	}
	previousIDs := make([]int64, 0, len(history.Previous))
	for _, o := range history.Previous {
		previousIDs = append(previousIDs, o.ID)
	}

	// Разбиение не пересекается и сохраняет исходный порядок внутри сегмента.
	s.Equal([]int64{4, 2}, currentIDs)
	s.Equal([]int64{3, 1}, previousIDs)
}

func (s *OrderServiceTestSuite) TestGetAllSorted() {
	now := time.Now()
	// Выборка в порядке новые-первыми, как ее отдает репозиторий.
	orders := []domain.OrderDetail{
		{Order: domain.Order{ID: 4, CreatedAt: now, Status: domain.OrderStatusCancelled}, UserCompany: "Beta"},
		{Order: domain.Order{ID: 3, CreatedAt: now.Add(-time.Hour), Status: domain.OrderStatusPending}, UserCompany: "Alpha"},
		{Order: domain.Order{ID: 2, CreatedAt: now.Add(-2 * time.Hour), Status: domain.OrderStatusComplete}, UserCompany: "Beta"},
		{Order: domain.Order{ID: 1, CreatedAt: now.Add(-3 * time.Hour), Status: domain.OrderStatusActive}, UserCompany: "Alpha"},
	}

	s.mockOrderRepo.EXPECT().GetAllWithDetails(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ []domain.OrderStatusType) ([]domain.OrderDetail, error) {
			cp := make([]domain.OrderDetail, len(orders))
			copy(cp, orders)
			return cp, nil
		}).Times(3)

	cases := []struct {
		name    string
		key     domain.OrderSortKey
		wantIDs []int64
	}{
		{name: "by date keeps repository order", key: domain.OrderSortByDate, wantIDs: []int64{4, 3, 2, 1}},
		// Внутри компании сохраняется новые-первыми.
		{name: "by company", key: domain.OrderSortByCompany, wantIDs: []int64{3, 1, 4, 2}},
		// pending, active, complete, cancelled.
		{name: "by status", key: domain.OrderSortByStatus, wantIDs: []int64{3, 1, 2, 4}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			got, err := s.orderService.GetAllSorted(s.T().Context(), t.key)
			s.Require().NoError(err)

			gotIDs := make([]int64, 0, len(got))
			for _, o := range got {
				gotIDs = append(gotIDs, o.ID)
			}
			s.Equal(t.wantIDs, gotIDs)
		})
	}
}

func (s *OrderServiceTestSuite) TestGetByScope() {
	orders := []domain.OrderDetail{
		{Order: domain.Order{ID: 2, Status: domain.OrderStatusPending}},
		{Order: domain.Order{ID: 1, Status: domain.OrderStatusActive}},
	}

	s.mockOrderRepo.EXPECT().
		GetAllWithDetails(gomock.Any(), gomock.Eq([]domain.OrderStatusType{
			domain.OrderStatusPending, domain.OrderStatusActive,
		})).
		Return(orders, nil)

	got, err := s.orderService.GetByScope(s.T().Context(), domain.OrderScopeCurrent)
	s.Require().NoError(err)
	s.Equal(orders, got)
}

func (s *OrderServiceTestSuite) TestUpdateStatus() {
	orderID := int64(42)

	updated := domain.Order{
		ID:     orderID,
		Status: domain.OrderStatusActive,
	}

	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Eq(repoargs.UpdateOrderStatus{
			OrderID: orderID,
			Status:  domain.OrderStatusActive,
		})).
		Return(&updated, nil)

	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Eq(repoargs.UpdateOrderStatus{
			OrderID: orderID,
			Status:  domain.OrderStatusCancelled,
		})).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		status  domain.OrderStatusType
		wantErr error
	}{
		{name: "ok", status: domain.OrderStatusActive},
		{name: "unknown order", status: domain.OrderStatusCancelled, wantErr: domain.ErrRecordNotFound},
		// Статус вне перечисления отклоняется без обращения к репозиторию.
		{name: "invalid status", status: "shipped", wantErr: domain.ErrInvalidOrderStatus},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			order, err := s.orderService.UpdateStatus(s.T().Context(), orderID, t.status)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(order)
				s.Equal(t.status, order.Status)
			}
		})
	}
}
