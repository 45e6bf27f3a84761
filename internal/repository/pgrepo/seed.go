package pgrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

// DefaultAdminUsername и DefaultAdminPassword - учетка, создаваемая при первом
// запуске. Пароль меняется через /admin/reset.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type seedPart struct {
	name        string
	description string
	price       string
}

var seedParts = []seedPart{
	{name: "Widget A", description: "Standard widget", price: "19.99"},
	{name: "Widget B", description: "Premium widget", price: "49.99"},
	{name: "Gear X", description: "Industrial gear", price: "89.5"},
}

// PasswordHasher дублирует интерфейс сервисного слоя чтобы не тянуть
// зависимость на него из репозитория.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Seed наполняет базу стартовыми данными: один админ если таблица админов
// пуста и три детали если пуста таблица деталей. Повторные вызовы ничего не
// меняют. Выполняется в одной транзакции.
func Seed(ctx context.Context, u uow.UOW, hasher PasswordHasher, l *logrus.Logger) error {
	txErr := u.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := seedAdmin(c, tx, hasher, l); err != nil {
			return err
		}
		return seedPartsTable(c, tx, l)
	})
	if txErr != nil {
		return fmt.Errorf("seeding database: %w", txErr)
	}
	return nil
}

func seedAdmin(ctx context.Context, tx uow.TX, hasher PasswordHasher, l *logrus.Logger) error {
	adminRepo, repoErr := uow.GetAs[*AdminRepository](tx, uow.RepositoryName(repoargs.AdminRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	count, countErr := adminRepo.Count(ctx)
	if countErr != nil {
		return countErr //nolint:wrapcheck
	}
	if count > 0 {
		return nil
	}

	hash, hashErr := hasher.HashPassword(DefaultAdminPassword)
	if hashErr != nil {
		return fmt.Errorf("hashing default admin password: %s", hashErr.Error())
	}
	if _, err := adminRepo.CreateAdmin(ctx, DefaultAdminUsername, hash); err != nil {
		return err //nolint:wrapcheck
	}
	l.WithField("username", DefaultAdminUsername).Info("seeded default admin account")
	return nil
}

func seedPartsTable(ctx context.Context, tx uow.TX, l *logrus.Logger) error {
	partRepo, repoErr := uow.GetAs[*PartRepository](tx, uow.RepositoryName(repoargs.PartRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	count, countErr := partRepo.Count(ctx)
	if countErr != nil {
		return countErr //nolint:wrapcheck
	}
	if count > 0 {
		return nil
	}

	for _, part := range seedParts {
		price, priceErr := decimal.NewFromString(part.price)
		if priceErr != nil {
			return fmt.Errorf("parsing seed price %s: %s", part.price, priceErr.Error())
		}
		if _, err := partRepo.CreatePart(ctx, part.name, part.description, price); err != nil {
			return err //nolint:wrapcheck
		}
	}
	l.WithField("count", len(seedParts)).Info("seeded parts catalog")
	return nil
}
