// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

type Product struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Price       float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	PromoPrice  float64    `json:"promo_price" gorm:"type:decimal(10,2);default:0"`
	CategoryID  *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`

	// Derived fields, recomputed by the review ledger only. Admin edits
	// must never write them.
	AvgRating   float64 `json:"avg_rating" gorm:"type:decimal(3,2);default:0"`
	RatingCount int64   `json:"rating_count" gorm:"default:0"`

	Images pq.StringArray `json:"images" gorm:"type:text[]"`

	// Display name of the category; "uncategorized" when the product has
	// none. Populated by the catalog service, not stored.
	CategoryName string `json:"category_name" gorm:"-"`

	// Relationships
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

// HasActivePromo reports whether the promotional price counts as active:
// a promo price of 0 means "no promotion", and a promo at or above the
// unit price is advertised nowhere.
func (p *Product) HasActivePromo() bool {
	return p.PromoPrice > 0 && p.PromoPrice < p.Price
}

// DiscountPercent is the displayed discount, 100 * (1 - promo/price).
func (p *Product) DiscountPercent() float64 {
	if !p.HasActivePromo() {
		return 0
	}
	return 100 * (1 - p.PromoPrice/p.Price)
}
