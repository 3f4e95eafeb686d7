package repo

import (
	"context"

	"github.com/mkazakov/shopdata/internal/models"
	"github.com/mkazakov/shopdata/internal/transport"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]transport.UserRow, error) {
	rows := make([]transport.UserRow, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Select("id AS user_id, username, email, password_hash, created_at AS user_created_at").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]transport.ProductRow, error) {
	rows := make([]transport.ProductRow, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("id AS product_id, name, category, price, stock").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]transport.OrderRow, error) {
	rows := make([]transport.OrderRow, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("id AS order_id, user_id, status, created_at AS order_created_at, total_amount").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListOrderItems(ctx context.Context) ([]transport.OrderItemRow, error) {
	rows := make([]transport.OrderItemRow, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("id AS order_item_id, order_id, product_id, quantity").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Dataset dumps the whole schema as one denormalized result set. Full outer
// joins keep orphaned rows from any of the four tables visible.
func (r *GormRepo) Dataset(ctx context.Context) ([]transport.DatasetRow, error) {
	rows := make([]transport.DatasetRow, 0)
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			o.id AS order_id,
			u.id AS user_id,
			p.id AS product_id,
			u.created_at AS user_created_at,
			o.created_at AS order_created_at,
			o.total_amount,
			p.name AS product_name,
			p.category AS product_category,
			oi.quantity,
			o.status,
			u.username,
			u.email,
			u.password_hash
		FROM orders o
		FULL OUTER JOIN users u ON o.user_id = u.id
		FULL OUTER JOIN order_items oi ON oi.order_id = o.id
		FULL OUTER JOIN products p ON oi.product_id = p.id`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
