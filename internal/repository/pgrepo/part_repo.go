package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type PartRepository struct {
	db uow.DBTX
}

func NewPartRepository(db uow.DBTX) *PartRepository {
	return &PartRepository{db: db}
}

const partColumns = `id, name, description, price`

// GetAll возвращает все детали отсортированные по имени по возрастанию.
func (p *PartRepository) GetAll(ctx context.Context) ([]domain.Part, error) {
	rows, err := p.db.Query(ctx, `
		SELECT `+partColumns+`
		FROM parts
		ORDER BY name ASC`)
	if err != nil {
		return nil, convertErr(err, "getting parts")
	}
	defer rows.Close()

	var parts []domain.Part
	for rows.Next() {
		part, scanErr := scanPart(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning part row")
		}
		parts = append(parts, *part)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating part rows")
	}
	return parts, nil
}

// FindByID возвращает деталь по id или domain.ErrRecordNotFound.
func (p *PartRepository) FindByID(ctx context.Context, id int64) (*domain.Part, error) {
	row := p.db.QueryRow(ctx, `
		SELECT `+partColumns+`
		FROM parts
		WHERE id = $1`,
		id)

	part, err := scanPart(row)
	if err != nil {
		return nil, convertErr(err, "finding part by id %d", id)
	}
	return part, nil
}

// Count возвращает кол-во деталей. Используется сидированием.
func (p *PartRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.QueryRow(ctx, `SELECT count(*) FROM parts`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting parts")
	}
	return count, nil
}

// CreatePart создает деталь. Используется сидированием.
func (p *PartRepository) CreatePart(ctx context.Context, name, description string, price decimal.Decimal) (*domain.Part, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO parts (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING `+partColumns,
		name, description, price)

	part, err := scanPart(row)
	if err != nil {
		return nil, convertErr(err, "creating part %s", name)
	}
	return part, nil
}

func scanPart(row rowScanner) (*domain.Part, error) {
	var part domain.Part
	if err := row.Scan(
		&part.ID,
		&part.Name,
		&part.Description,
		&part.Price,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &part, nil
}
