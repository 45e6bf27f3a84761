package pgrepo

import (
	"context"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, created_at, updated_at, user_id, part_id, quantity, amount, status`

// CreateOrder создает заказ. Ссылка на несуществующего юзера или деталь
// вернет domain.ErrRecordNotFound (нарушение внешнего ключа).
func (o *OrderRepository) CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, part_id, quantity, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		args.UserID, args.PartID, args.Quantity, args.Amount, args.Status)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user %d", args.UserID)
	}
	return order, nil
}

// GetByUserID возвращает заказы юзера с названием детали, отсортированные по
// дате создания по убыванию. limit = 0 снимает ограничение.
func (o *OrderRepository) GetByUserID(ctx context.Context, userID int64, limit uint) ([]domain.OrderDetail, error) {
	query := `
		SELECT ` + joinedColumns(orderColumns) + `, p.name
		FROM orders o
		JOIN parts p ON p.id = o.part_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id DESC`

	args := []any{userID}
	if limit > 0 {
		safeLimit, limitErr := safeConvertUintToInt32(limit)
		if limitErr != nil {
			return nil, convertErr(limitErr, "converting limit to int32")
		}
		query += ` LIMIT $2`
		args = append(args, safeLimit)
	}

	rows, err := o.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "getting orders by userID %d", userID)
	}
	defer rows.Close()

	var orders []domain.OrderDetail
	for rows.Next() {
		var detail domain.OrderDetail
		if scanErr := rows.Scan(
			&detail.ID,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.UserID,
			&detail.PartID,
			&detail.Quantity,
			&detail.Amount,
			&detail.Status,
			&detail.PartName,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning order row")
		}
		orders = append(orders, detail)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating order rows")
	}
	return orders, nil
}

// GetAllWithDetails возвращает заказы всех юзеров с email/company юзера и
// названием детали, отсортированные по дате создания по убыванию. Пустой
// срез statuses снимает фильтр по статусу.
func (o *OrderRepository) GetAllWithDetails(
	ctx context.Context,
	statuses []domain.OrderStatusType,
) ([]domain.OrderDetail, error) {
	query := `
		SELECT ` + joinedColumns(orderColumns) + `, p.name, u.email, u.company
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN parts p ON p.id = o.part_id`

	var args []any
	if len(statuses) > 0 {
		statusStrs := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrs[i] = string(s)
		}
		query += ` WHERE o.status = ANY($1)`
		args = append(args, statusStrs)
	}
	query += ` ORDER BY o.created_at DESC, o.id DESC`

	rows, err := o.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "getting orders with details")
	}
	defer rows.Close()

	var orders []domain.OrderDetail
	for rows.Next() {
		detail, scanErr := scanOrderDetail(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning order detail row")
		}
		orders = append(orders, *detail)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating order detail rows")
	}
	return orders, nil
}

// FindDetailByID возвращает заказ с данными юзера и детали или
// domain.ErrRecordNotFound.
func (o *OrderRepository) FindDetailByID(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	row := o.db.QueryRow(ctx, `
		SELECT `+joinedColumns(orderColumns)+`, p.name, u.email, u.company
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN parts p ON p.id = o.part_id
		WHERE o.id = $1`,
		id)

	detail, err := scanOrderDetail(row)
	if err != nil {
		return nil, convertErr(err, "finding order detail by id %d", id)
	}
	return detail, nil
}

// UpdateStatus меняет статус заказа и обновляет updated_at. Возвращает
// domain.ErrRecordNotFound для несуществующего заказа.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+orderColumns,
		args.OrderID, args.Status)

	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating status for order %d", args.OrderID)
	}
	return order, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserID,
		&order.PartID,
		&order.Quantity,
		&order.Amount,
		&order.Status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}

func scanOrderDetail(row rowScanner) (*domain.OrderDetail, error) {
	var detail domain.OrderDetail
	if err := row.Scan(
		&detail.ID,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.UserID,
		&detail.PartID,
		&detail.Quantity,
		&detail.Amount,
		&detail.Status,
		&detail.PartName,
		&detail.UserEmail,
		&detail.UserCompany,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &detail, nil
}
