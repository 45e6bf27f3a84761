package service

import (
	"context"

	"github.com/fsdevblog/parts-shop/internal/domain"
	"github.com/fsdevblog/parts-shop/internal/repository/repoargs"
	"github.com/fsdevblog/parts-shop/pkg/uow"
)

type PartService struct {
	partRepo PartRepository
}

func NewPartService(u uow.UOW) (*PartService, error) {
	partRepo, err := uow.GetRepositoryAs[PartRepository](u, uow.RepositoryName(repoargs.PartRepoName))
	if err != nil {
		return nil, err
	}
	return &PartService{partRepo: partRepo}, nil
}

// GetAll возвращает каталог деталей по имени по возрастанию.
func (s *PartService) GetAll(ctx context.Context) ([]domain.Part, error) {
	parts, err := s.partRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return parts, nil
}
