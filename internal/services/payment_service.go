// internal/services/payment_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/lojaviva/loja-backend/internal/config"
)

// PaymentIntent is the slice of the processor's intent object the rest
// of the system cares about.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentProvider abstracts the payment processor so the checkout flow
// can be exercised without network access.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency, description string) (*PaymentIntent, error)
}

// StripeProvider creates real payment intents through the Stripe API.
type StripeProvider struct {
	currency string
}

func NewStripeProvider(cfg *config.Config) *StripeProvider {
	stripe.Key = cfg.Payment.StripeSecretKey
	return &StripeProvider{
		currency: cfg.Payment.Currency,
	}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountMinorUnits int64, currency, description string) (*PaymentIntent, error) {
	if currency == "" {
		currency = p.currency
	}

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:      stripe.Int64(amountMinorUnits),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"amount":   amountMinorUnits,
			"currency": currency,
		}).Error("Failed to create payment intent")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"intent_id": pi.ID,
		"amount":    amountMinorUnits,
		"currency":  currency,
	}).Info("Payment intent created")

	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}
