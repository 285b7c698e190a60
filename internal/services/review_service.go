// internal/services/review_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lojaviva/loja-backend/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// SubmitReview records a review and recomputes the product's rating
// aggregates in the same transaction.
//
// A user gets one review per product, and only for products that appear
// in some order line of theirs. Any order counts, including those still
// awaiting payment or whose payment failed.
func (s *ReviewService) SubmitReview(userID, productID uuid.UUID, req *SubmitReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Review
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateReview
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var purchased int64
		err = tx.Model(&models.OrderLine{}).
			Joins("JOIN orders ON orders.id = order_lines.order_id").
			Where("orders.user_id = ? AND order_lines.product_id = ?", userID, productID).
			Where("orders.deleted_at IS NULL").
			Count(&purchased).Error
		if err != nil {
			return err
		}
		if purchased == 0 {
			return ErrNotPurchased
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		return tx.Model(&models.Product{}).
			Where("id = ?", productID).
			Updates(map[string]interface{}{
				"avg_rating":   gorm.Expr("(SELECT AVG(rating) FROM reviews WHERE product_id = ? AND deleted_at IS NULL)", productID),
				"rating_count": gorm.Expr("(SELECT COUNT(*) FROM reviews WHERE product_id = ? AND deleted_at IS NULL)", productID),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
		"rating":     req.Rating,
	}).Info("Review recorded")

	return review, nil
}
