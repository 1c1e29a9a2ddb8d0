package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Order statuses (typical storefront flow). The transition graph is
	// deliberately open: any status may follow any other.
	OrderStatusPending    OrderStatus = "Pending"    // Order placed, awaiting handling
	OrderStatusProcessing OrderStatus = "Processing" // Being packed
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled before shipping
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderNumber   string          `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID        string          `gorm:"index" json:"user_id"`
	Email         string          `gorm:"not null" json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	PostalCode    string          `json:"postal_code"`
	Country       string          `json:"country"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderItem is a denormalized snapshot of the product at purchase time.
// It references the product by id only; later product edits or deletions
// never touch historical items.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size"`
	Image       string          `json:"image"`
}
