// internal/services/checkout_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lojaviva/loja-backend/internal/config"
	"github.com/lojaviva/loja-backend/internal/models"
)

type CheckoutService struct {
	db       *gorm.DB
	cfg      *config.Config
	provider PaymentProvider
}

func NewCheckoutService(db *gorm.DB, cfg *config.Config, provider PaymentProvider) *CheckoutService {
	return &CheckoutService{db: db, cfg: cfg, provider: provider}
}

// Checkout converts the user's cart into an order.
//
// The charged amount is the full unit price of every line even when a
// promotion is active; promo prices are display-only. The payment
// intent is requested first, and only after the processor accepts it
// are the order, its lines and the cart clear committed in one
// transaction. A processor failure leaves the cart untouched and
// persists nothing.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var lines []models.CartLine
	err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	amountMinorUnits := int64(math.Round(total * 100))

	intentCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Payment.IntentTimeout)*time.Second)
	defer cancel()

	description := fmt.Sprintf("Pedido de %s", user.Email)
	intent, err := s.provider.CreateIntent(intentCtx, amountMinorUnits, s.cfg.Payment.Currency, description)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Checkout aborted, payment intent rejected")
		return nil, fmt.Errorf("%w: %v", ErrPaymentIntent, err)
	}

	order := &models.Order{
		UserID:          userID,
		Total:           total,
		Status:          models.OrderStatusAwaitingPayment,
		PaymentIntentID: intent.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, line := range lines {
			orderLine := models.OrderLine{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.Product.Price,
			}
			if err := tx.Create(&orderLine).Error; err != nil {
				return err
			}
			order.Lines = append(order.Lines, orderLine)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"user_id":   userID,
		"total":     total,
		"intent_id": intent.ID,
		"lines":     len(order.Lines),
	}).Info("Order created")

	return order, nil
}

// PaymentURL is the hosted payment page for an order's intent.
func (s *CheckoutService) PaymentURL(order *models.Order) string {
	if order.PaymentIntentID == "" {
		return ""
	}
	return s.cfg.Payment.CheckoutBaseURL + "/" + order.PaymentIntentID
}

// ListOrders returns the user's orders, newest first, with line items
// and their products preloaded.
func (s *CheckoutService) ListOrders(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Lines.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
