package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mkazakov/shopdata/internal/models"
	"github.com/mkazakov/shopdata/internal/transport"
)

func (r *GormRepo) UserExists(ctx context.Context, id uint) (bool, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Select("id").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// SetProductStock overwrites the stock column to an absolute value. There is
// no compare-and-swap against the previously read stock, so concurrent
// writers race last-write-wins.
func (r *GormRepo) SetProductStock(ctx context.Context, productID, stock uint) error {
	return r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", stock).Error
}

func (r *GormRepo) OrderByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// OrderDetail returns the denormalized projection of one order: one row per
// line item, each carrying the order header, the user and the product.
func (r *GormRepo) OrderDetail(ctx context.Context, orderID uint) ([]transport.OrderDetailRow, error) {
	rows := make([]transport.OrderDetailRow, 0)
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
		JOIN users u ON o.user_id = u.id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON oi.product_id = p.id
		WHERE o.id = ?`, orderID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
