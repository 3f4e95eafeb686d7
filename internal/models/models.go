package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username     string    `gorm:"unique;not null"           json:"username"`
	Email        string    `gorm:"unique;not null"           json:"email"`
	PasswordHash string    `gorm:"not null"                  json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type Product struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name     string  `gorm:"not null"                  json:"name"`
	Category string  `gorm:"not null"                  json:"category"`
	Price    float64 `gorm:"not null"                  json:"price"`
	Stock    uint    `json:"stock"`
}

type Order struct {
	ID          uint      `gorm:"primaryKey"      json:"id"`
	UserID      uint      `gorm:"index;not null"  json:"user_id"`
	TotalAmount float64   `gorm:"not null"        json:"total_amount"`
	Status      string    `gorm:"not null"        json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"                  json:"id"`
	OrderID   uint `gorm:"index;not null"              json:"order_id"`
	ProductID uint `gorm:"not null"                    json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"  json:"quantity"`
}

// Statuses the seeder and dashboard use. The write path accepts any string,
// see service.AllowTransition.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Product{}, &Order{}, &OrderItem{})
}
