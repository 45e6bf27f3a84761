package service

import (
	"fmt"

	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type AppServices struct {
	UserService  *UserService
	AdminService *AdminService
	PartService  *PartService
	OrderService *OrderService
}

func Factory(unitOfWork uow.UOW, hasher PasswordHasher) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	adminService, adminServiceErr := NewAdminService(unitOfWork, hasher)
	if adminServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", adminServiceErr.Error())
	}

	partService, partServiceErr := NewPartService(unitOfWork)
	if partServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", partServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	return &AppServices{
		UserService:  userService,
		AdminService: adminService,
		PartService:  partService,
		OrderService: orderService,
	}, nil
}
