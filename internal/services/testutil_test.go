// internal/services/testutil_test.go
package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lojaviva/loja-backend/internal/config"
	"github.com/lojaviva/loja-backend/internal/models"
)

// newTestDB opens an isolated in-memory database per test. The shared
// cache keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.Review{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		Payment: config.PaymentConfig{
			Currency:        "brl",
			CheckoutBaseURL: "https://checkout.stripe.com/c/pay",
			IntentTimeout:   5,
		},
	}
}

// fakeProvider stands in for the payment processor and records the
// last intent request it saw.
type fakeProvider struct {
	err             error
	calls           int
	lastAmount      int64
	lastCurrency    string
	lastDescription string
}

func (f *fakeProvider) CreateIntent(ctx context.Context, amountMinorUnits int64, currency, description string) (*PaymentIntent, error) {
	f.calls++
	f.lastAmount = amountMinorUnits
	f.lastCurrency = currency
	f.lastDescription = description
	if f.err != nil {
		return nil, f.err
	}
	return &PaymentIntent{
		ID:           fmt.Sprintf("pi_test_%d", f.calls),
		ClientSecret: "pi_test_secret",
		Status:       "requires_payment_method",
	}, nil
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:  "Test User",
		Email: email,
	}
	require.NoError(t, user.SetPassword("Secret123!"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price, promoPrice float64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      price,
		PromoPrice: promoPrice,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func addTestCartLine(t *testing.T, db *gorm.DB, userID, productID uuid.UUID, quantity int) *models.CartLine {
	t.Helper()
	line := &models.CartLine{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	require.NoError(t, db.Create(line).Error)
	return line
}
