package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type AdminService struct {
	uow       uow.UOW
	adminRepo AdminRepository
	psswd     PasswordHasher
}

func NewAdminService(u uow.UOW, hasher PasswordHasher) (*AdminService, error) {
	adminRepo, adminRepoErr := uow.GetRepositoryAs[AdminRepository](u, uow.RepositoryName(repoargs.AdminRepoName))
	if adminRepoErr != nil {
		return nil, adminRepoErr
	}
	return &AdminService{
		uow:       u,
		adminRepo: adminRepo,
		psswd:     hasher,
	}, nil
}

type LoginAdminArgs struct {
	Username string
	Password string
}

// Login аутентифицирует админа по паре юзернейм/пароль. Возвращает
// domain.ErrRecordNotFound и domain.ErrPasswordMissMatch, которые наружу
// должны выглядеть одинаково.
func (s *AdminService) Login(ctx context.Context, args LoginAdminArgs) (*domain.Admin, error) {
	admin, findErr := s.adminRepo.FindByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, fmt.Errorf("logging in admin: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, admin.EncryptedPassword) {
		return nil, fmt.Errorf("logging in admin: %w", domain.ErrPasswordMissMatch)
	}
	return admin, nil
}

type ResetPasswordArgs struct {
	Username    string
	NewPassword string
}

// ResetPassword безусловно меняет пароль админа: старый пароль не
// запрашивается, это самообслуживаемое восстановление. Поиск и обновление
// идут в одной транзакции. Возвращает domain.ErrRecordNotFound если админа
// с таким юзернеймом нет.
func (s *AdminService) ResetPassword(ctx context.Context, args ResetPasswordArgs) (*domain.Admin, error) {
	hash, hashErr := s.psswd.HashPassword(args.NewPassword)
	if hashErr != nil {
		return nil, fmt.Errorf("resetting admin password: %s", hashErr.Error())
	}

	var admin *domain.Admin
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		adminRepo, adminRepoErr := uow.GetAs[AdminRepository](tx, uow.RepositoryName(repoargs.AdminRepoName))
		if adminRepoErr != nil {
			return adminRepoErr //nolint:wrapcheck
		}

		found, findErr := adminRepo.FindByUsername(c, args.Username)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		var updErr error
		admin, updErr = adminRepo.UpdatePassword(c, found.ID, hash)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("resetting admin password: %w", txErr)
	}
	return admin, nil
}
