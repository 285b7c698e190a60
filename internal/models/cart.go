// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// CartLine is one pending line item in a user's cart. Repeated adds of
// the same product create separate rows; lines are never merged.
// CreatedAt doubles as the added-at timestamp.
type CartLine struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	// Relationships
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
