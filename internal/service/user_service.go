package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
	psswd    PasswordHasher
}

func NewUserService(u uow.UOW, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
		psswd:    hasher,
	}, nil
}

type RegisterUserArgs struct {
	Company  string
	Email    string
	Password string
}

// Register создает юзера. Пароль хешируется, вставка выполняется в
// транзакции. При занятом email возвращает domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		var createErr error
		user, createErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Company:  args.Company,
			Email:    args.Email,
			Password: password,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("registering user: %w", txErr)
	}
	return user, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует юзера по паре email/пароль. Возвращает
// domain.ErrRecordNotFound для неизвестного email и
// domain.ErrPasswordMissMatch для неверного пароля. Вызывающая сторона
// обязана не различать эти две ошибки в ответе.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, error) {
	user, findErr := s.userRepo.FindByEmail(ctx, args.Email)
	if findErr != nil {
		return nil, fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, fmt.Errorf("logging in user: %w", domain.ErrPasswordMissMatch)
	}
	return user, nil
}

// GetByID возвращает юзера по id или domain.ErrRecordNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// GetAll возвращает всех юзеров, новые первыми.
func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}
