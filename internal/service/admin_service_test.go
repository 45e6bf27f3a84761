package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/internal/service/mocks"
	"github.com/fsdevblog/parts-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/parts-shop/pkg/uow/mocks"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockAdminRepo *mocks.MockAdminRepository
	mockPsswd     *mocks.MockPasswordHasher
	adminService  *AdminService
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func (s *AdminServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockAdminRepo = mocks.NewMockAdminRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AdminRepoName)).
		Return(s.mockAdminRepo, nil).AnyTimes()

	adminService, servErr := NewAdminService(s.mockUOW, s.mockPsswd)
	s.Require().NoError(servErr)
	s.adminService = adminService
}

func (s *AdminServiceTestSuite) TestLogin() {
	savedUsername := "admin"

	argsOk := LoginAdminArgs{Username: savedUsername, Password: "<PASSWORD>"}
	argsWrongUsername := LoginAdminArgs{Username: "nobody", Password: "<PASSWORD>"}
	argsWrongPass := LoginAdminArgs{Username: savedUsername, Password: "wrong pass"}

	validHashPassword := "hash ok"

	savedAdmin := domain.Admin{
		ID:                1,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Username:          savedUsername,
		EncryptedPassword: validHashPassword,
	}

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	s.mockAdminRepo.EXPECT().
		FindByUsername(gomock.Any(), savedUsername).
		Return(&savedAdmin, nil).Times(2)

	s.mockAdminRepo.EXPECT().
		FindByUsername(gomock.Any(), argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginAdminArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "wrong username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			admin, err := s.adminService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(admin)
				s.Equal(savedAdmin.ID, admin.ID)
			}
		})
	}
}

func (s *AdminServiceTestSuite) TestResetPassword() {
	savedUsername := "admin"

	argsOk := ResetPasswordArgs{Username: savedUsername, NewPassword: "new pass"}
	argsUnknown := ResetPasswordArgs{Username: "nobody", NewPassword: "new pass"}

	newHash := "new hash"

	savedAdmin := domain.Admin{
		ID:                1,
		Username:          savedUsername,
		EncryptedPassword: "old hash",
	}
	updatedAdmin := domain.Admin{
		ID:                1,
		Username:          savedUsername,
		EncryptedPassword: newHash,
	}

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AdminRepoName)).
		Return(s.mockAdminRepo, nil).MinTimes(1)

	s.mockPsswd.EXPECT().HashPassword(argsOk.NewPassword).Return(newHash, nil).Times(2)

	s.mockAdminRepo.EXPECT().
		FindByUsername(gomock.Any(), savedUsername).
		Return(&savedAdmin, nil)
	s.mockAdminRepo.EXPECT().
		FindByUsername(gomock.Any(), argsUnknown.Username).
		Return(nil, domain.ErrRecordNotFound)

	s.mockAdminRepo.EXPECT().
		UpdatePassword(gomock.Any(), savedAdmin.ID, newHash).
		Return(&updatedAdmin, nil)

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	cases := []struct {
		name    string
		args    ResetPasswordArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "unknown username", args: argsUnknown, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			admin, err := s.adminService.ResetPassword(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(admin)
				s.Equal(newHash, admin.EncryptedPassword)
			}
		})
	}
}
