// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order is created by checkout only after a payment intent was obtained.
// Total is computed once from the cart and never recomputed on status
// changes. CreatedAt is the placed-at timestamp.
type Order struct {
	BaseModel
	UserID          uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Total           float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	PaymentIntentID string      `json:"payment_intent_id" gorm:"size:255"`

	// Relationships
	User  User        `json:"-" gorm:"foreignKey:UserID"`
	Lines []OrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderLine snapshots quantity and the unit price that was charged; it
// must not follow later product price changes.
type OrderLine struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitPrice float64   `json:"unit_price" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Order   Order   `json:"-" gorm:"foreignKey:OrderID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
