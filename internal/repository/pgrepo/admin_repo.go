package pgrepo

import (
	"context"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type AdminRepository struct {
	db uow.DBTX
}

func NewAdminRepository(db uow.DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, created_at, updated_at, username, encrypted_password`

// FindByUsername ищет админа по юзернейму. Возвращает domain.ErrRecordNotFound
// если записи нет.
func (a *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	row := a.db.QueryRow(ctx, `
		SELECT `+adminColumns+`
		FROM admins
		WHERE username = $1`,
		username)

	admin, err := scanAdmin(row)
	if err != nil {
		return nil, convertErr(err, "finding admin by username %s", username)
	}
	return admin, nil
}

// UpdatePassword заменяет хеш пароля админа и обновляет updated_at.
func (a *AdminRepository) UpdatePassword(ctx context.Context, id int64, encryptedPassword string) (*domain.Admin, error) {
	row := a.db.QueryRow(ctx, `
		UPDATE admins
		SET encrypted_password = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+adminColumns,
		id, encryptedPassword)

	admin, err := scanAdmin(row)
	if err != nil {
		return nil, convertErr(err, "updating password for admin %d", id)
	}
	return admin, nil
}

// Count возвращает кол-во админов. Используется сидированием.
func (a *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := a.db.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting admins")
	}
	return count, nil
}

// CreateAdmin создает админа. При конфликте юзернейма возвращает domain.ErrDuplicateKey.
func (a *AdminRepository) CreateAdmin(ctx context.Context, username, encryptedPassword string) (*domain.Admin, error) {
	row := a.db.QueryRow(ctx, `
		INSERT INTO admins (username, encrypted_password)
		VALUES ($1, $2)
		RETURNING `+adminColumns,
		username, encryptedPassword)

	admin, err := scanAdmin(row)
	if err != nil {
		return nil, convertErr(err, "creating admin %s", username)
	}
	return admin, nil
}

func scanAdmin(row rowScanner) (*domain.Admin, error) {
	var admin domain.Admin
	if err := row.Scan(
		&admin.ID,
		&admin.CreatedAt,
		&admin.UpdatedAt,
		&admin.Username,
		&admin.EncryptedPassword,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &admin, nil
}
