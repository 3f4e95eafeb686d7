package service

import (
	"context"

	"github.com/mkazakov/shopdata/internal/models"
	"github.com/mkazakov/shopdata/internal/repo"
	"github.com/mkazakov/shopdata/internal/transport"
)

type StoreService struct {
	Repo *repo.GormRepo
}

func (s *StoreService) CreateUser(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (s *StoreService) ListUsers(ctx context.Context) ([]transport.UserRow, error) {
	rows, err := s.Repo.ListUsers(ctx)
	return rows, classify(err)
}

func (s *StoreService) ListProducts(ctx context.Context) ([]transport.ProductRow, error) {
	rows, err := s.Repo.ListProducts(ctx)
	return rows, classify(err)
}

func (s *StoreService) ListOrders(ctx context.Context) ([]transport.OrderRow, error) {
	rows, err := s.Repo.ListOrders(ctx)
	return rows, classify(err)
}

func (s *StoreService) ListOrderItems(ctx context.Context) ([]transport.OrderItemRow, error) {
	rows, err := s.Repo.ListOrderItems(ctx)
	return rows, classify(err)
}

func (s *StoreService) Dataset(ctx context.Context) ([]transport.DatasetRow, error) {
	rows, err := s.Repo.Dataset(ctx)
	return rows, classify(err)
}
