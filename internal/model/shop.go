package model

import (
	"time"

	"gorm.io/gorm"
)

// ShopProduct is one item in the shop listing. ProductID is the
// merchant-side reference shown on invoices.
type ShopProduct struct {
	ID          string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProductID   string         `gorm:"type:varchar(64);uniqueIndex:idx_shop_product_id;not null" json:"product_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Image       string         `gorm:"type:varchar(512)" json:"image,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ShopProduct) TableName() string { return "shop_products" }

// Order is a placed shop order, read-only in the admin except deletion.
type Order struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderRef  string         `gorm:"type:varchar(64);uniqueIndex:idx_order_ref;not null" json:"order_ref"`
	UserID    string         `gorm:"type:varchar(64);index:idx_order_user" json:"user_id"`
	Total     float64        `json:"total"`
	Status    string         `gorm:"type:varchar(32);default:pending;index:idx_order_status" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Order) TableName() string { return "orders" }
