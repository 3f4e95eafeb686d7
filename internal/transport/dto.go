package transport

import "time"

// OrderProduct is one line of an order request. Fields are pointers so a
// missing key can be told apart from a zero value once the transaction is
// already in flight.
type OrderProduct struct {
	ProductID *uint `json:"product_id"`
	Quantity  *uint `json:"quantity"`
}

// StockUpdate overwrites a product's stock to an absolute value, not a delta.
type StockUpdate struct {
	ProductID *uint `json:"product_id"`
	NewStock  *uint `json:"new_stock"`
}

type CreateOrderRequest struct {
	UserID       *uint          `json:"user_id"      validate:"required"`
	TotalAmount  *float64       `json:"total_amount" validate:"required"`
	Status       *string        `json:"status"       validate:"required"`
	Products     []OrderProduct `json:"products"     validate:"required,min=1"`
	UpdatedStock []StockUpdate  `json:"updated_stock"`
}

type UpdateOrderStatusRequest struct {
	OrderID   *uint   `json:"order_id"   validate:"required"`
	NewStatus *string `json:"new_status" validate:"required"`
}

type CreateUserRequest struct {
	Username     string `json:"username"      validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	PasswordHash string `json:"password_hash" validate:"required"`
}

type UserRow struct {
	UserID        uint      `json:"user_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type ProductRow struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Stock     uint    `json:"stock"`
}

type OrderRow struct {
	OrderID        uint      `json:"order_id"`
	UserID         uint      `json:"user_id"`
	Status         string    `json:"status"`
	OrderCreatedAt time.Time `json:"order_created_at"`
	TotalAmount    float64   `json:"total_amount"`
}

type OrderItemRow struct {
	OrderItemID uint `json:"order_item_id"`
	OrderID     uint `json:"order_id"`
	ProductID   uint `json:"product_id"`
	Quantity    uint `json:"quantity"`
}

// OrderDetailRow is one row of the denormalized projection joining an order
// with its user, items and products.
type OrderDetailRow struct {
	OrderID         uint      `json:"order_id"`
	UserID          uint      `json:"user_id"`
	ProductID       uint      `json:"product_id"`
	UserCreatedAt   time.Time `json:"user_created_at"`
	OrderCreatedAt  time.Time `json:"order_created_at"`
	TotalAmount     float64   `json:"total_amount"`
	ProductName     string    `json:"product_name"`
	ProductCategory string    `json:"product_category"`
	Quantity        uint      `json:"quantity"`
	Status          string    `json:"status"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"password_hash"`
}

// DatasetRow is the full-outer-join dump served to the dashboard. Every field
// is nullable because orphaned rows on either side still appear.
type DatasetRow struct {
	OrderID         *uint      `json:"order_id"`
	UserID          *uint      `json:"user_id"`
	ProductID       *uint      `json:"product_id"`
	UserCreatedAt   *time.Time `json:"user_created_at"`
	OrderCreatedAt  *time.Time `json:"order_created_at"`
	TotalAmount     *float64   `json:"total_amount"`
	ProductName     *string    `json:"product_name"`
	ProductCategory *string    `json:"product_category"`
	Quantity        *uint      `json:"quantity"`
	Status          *string    `json:"status"`
	Username        *string    `json:"username"`
	Email           *string    `json:"email"`
	PasswordHash    *string    `json:"password_hash"`
}
