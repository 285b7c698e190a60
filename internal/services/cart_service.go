// internal/services/cart_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lojaviva/loja-backend/internal/models"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

type AddLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=10"`
}

// AddLine appends a new cart line. Adding the same product twice keeps
// two separate lines; lines are never merged.
func (s *CartService) AddLine(userID uuid.UUID, req *AddLineRequest) (*models.CartLine, error) {
	if req.Quantity < 1 || req.Quantity > 10 {
		return nil, ErrInvalidQuantity
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	line := &models.CartLine{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := s.db.Create(line).Error; err != nil {
		return nil, err
	}
	line.Product = product

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	}).Info("Cart line added")

	return line, nil
}

// RemoveLine deletes a cart line after checking it belongs to the
// calling user.
func (s *CartService) RemoveLine(userID, lineID uuid.UUID) error {
	var line models.CartLine
	if err := s.db.First(&line, "id = ?", lineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartLineNotFound
		}
		return err
	}

	if line.UserID != userID {
		return ErrNotCartOwner
	}

	return s.db.Delete(&line).Error
}

// ListLines returns the user's cart in the order items were added.
func (s *CartService) ListLines(userID uuid.UUID) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

// Total sums full unit prices over the lines. Promotional prices do not
// participate in cart or checkout totals.
func (s *CartService) Total(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Clear removes every line from the user's cart.
func (s *CartService) Clear(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}
