package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mkazakov/shopdata/internal/models"
	"github.com/mkazakov/shopdata/internal/repo"
	"github.com/mkazakov/shopdata/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// PlaceOrder verifies the referenced user, then inserts the order header,
// every line item and every stock overwrite as one transaction. A malformed
// entry anywhere in the request rolls the whole thing back. On success it
// returns the order id and the denormalized projection of what was stored.
func (s *OrderService) PlaceOrder(ctx context.Context, req transport.CreateOrderRequest) (uint, []transport.OrderDetailRow, error) {
	if len(req.Products) == 0 {
		return 0, nil, fmt.Errorf("%w: products required", ErrValidation)
	}

	exists, err := s.Repo.UserExists(ctx, *req.UserID)
	if err != nil {
		return 0, nil, classify(err)
	}
	if !exists {
		return 0, nil, fmt.Errorf("%w: user with id %d does not exist", ErrNotFound, *req.UserID)
	}

	order := &models.Order{
		UserID:      *req.UserID,
		TotalAmount: *req.TotalAmount,
		Status:      *req.Status,
	}

	txErr := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for i, p := range req.Products {
			if p.ProductID == nil || p.Quantity == nil {
				return fmt.Errorf("%w: products[%d] is missing product_id or quantity", ErrValidation, i)
			}
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: *p.ProductID,
				Quantity:  *p.Quantity,
			}
			if err := tx.CreateOrderItem(ctx, &item); err != nil {
				return err
			}
		}

		for i, u := range req.UpdatedStock {
			if u.ProductID == nil || u.NewStock == nil {
				return fmt.Errorf("%w: updated_stock[%d] is missing product_id or new_stock", ErrValidation, i)
			}
			if err := tx.SetProductStock(ctx, *u.ProductID, *u.NewStock); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrValidation) {
			return 0, nil, txErr
		}
		return 0, nil, classify(txErr)
	}

	rows, err := s.Repo.OrderDetail(ctx, order.ID)
	if err != nil {
		return 0, nil, classify(err)
	}
	if len(rows) == 0 {
		return 0, nil, fmt.Errorf("order %d was created but could not be read back", order.ID)
	}

	return order.ID, rows, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, newStatus string) error {
	order, err := s.Repo.OrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order with id %d does not exist", ErrNotFound, orderID)
		}
		return classify(err)
	}

	if err := AllowTransition(order.Status, newStatus); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.Repo.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order with id %d does not exist", ErrNotFound, orderID)
		}
		return classify(err)
	}
	return nil
}
