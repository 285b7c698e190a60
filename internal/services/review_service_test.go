// internal/services/review_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/loja-backend/internal/models"
)

func TestSubmitReviewRequiresPurchase(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	user := createTestUser(t, db, "window@example.com")
	product := createTestProduct(t, db, "Webcam", 320.00, 0)

	_, err := svc.SubmitReview(user.ID, product.ID, &SubmitReviewRequest{Rating: 5, Comment: "looks nice"})
	assert.ErrorIs(t, err, ErrNotPurchased)

	var reviewCount int64
	db.Model(&models.Review{}).Count(&reviewCount)
	assert.Zero(t, reviewCount)
}

func TestSubmitReviewAwaitingPaymentOrderCounts(t *testing.T) {
	db := newTestDB(t)
	provider := &fakeProvider{}
	checkout := NewCheckoutService(db, testConfig(), provider)
	svc := NewReviewService(db)

	user := createTestUser(t, db, "pending@example.com")
	product := createTestProduct(t, db, "Speaker", 420.00, 0)
	addTestCartLine(t, db, user.ID, product.ID, 1)

	order, err := checkout.Checkout(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusAwaitingPayment, order.Status)

	// The purchase gate looks at order lines only; payment status is
	// irrelevant.
	review, err := svc.SubmitReview(user.ID, product.ID, &SubmitReviewRequest{Rating: 4, Comment: "arrived fast"})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestSubmitReviewDuplicate(t *testing.T) {
	db := newTestDB(t)
	provider := &fakeProvider{}
	checkout := NewCheckoutService(db, testConfig(), provider)
	svc := NewReviewService(db)

	user := createTestUser(t, db, "once@example.com")
	product := createTestProduct(t, db, "Desk Lamp", 120.00, 0)
	addTestCartLine(t, db, user.ID, product.ID, 1)
	_, err := checkout.Checkout(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.SubmitReview(user.ID, product.ID, &SubmitReviewRequest{Rating: 5})
	require.NoError(t, err)

	_, err = svc.SubmitReview(user.ID, product.ID, &SubmitReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, ErrDuplicateReview)

	var reviewCount int64
	db.Model(&models.Review{}).Count(&reviewCount)
	assert.EqualValues(t, 1, reviewCount)
}

func TestSubmitReviewRecomputesAggregates(t *testing.T) {
	db := newTestDB(t)
	provider := &fakeProvider{}
	checkout := NewCheckoutService(db, testConfig(), provider)
	svc := NewReviewService(db)

	product := createTestProduct(t, db, "Bookshelf", 540.00, 0)

	ratings := []int{5, 4, 3}
	for i, rating := range ratings {
		user := createTestUser(t, db, userEmail(i))
		addTestCartLine(t, db, user.ID, product.ID, 1)
		_, err := checkout.Checkout(context.Background(), user.ID)
		require.NoError(t, err)

		_, err = svc.SubmitReview(user.ID, product.ID, &SubmitReviewRequest{Rating: rating})
		require.NoError(t, err)
	}

	var refreshed models.Product
	require.NoError(t, db.First(&refreshed, "id = ?", product.ID).Error)
	assert.InDelta(t, 4.0, refreshed.AvgRating, 0.001)
	assert.EqualValues(t, 3, refreshed.RatingCount)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	user := createTestUser(t, db, "bounds@example.com")
	product := createTestProduct(t, db, "Poster", 30.00, 0)

	_, err := svc.SubmitReview(user.ID, product.ID, &SubmitReviewRequest{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.SubmitReview(user.ID, product.ID, &SubmitReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestSubmitReviewUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	user := createTestUser(t, db, "ghost@example.com")
	missing := createTestProduct(t, db, "Temp", 10.00, 0)
	require.NoError(t, db.Unscoped().Delete(&models.Product{}, "id = ?", missing.ID).Error)

	_, err := svc.SubmitReview(user.ID, missing.ID, &SubmitReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func userEmail(i int) string {
	return string(rune('a'+i)) + "-reviewer@example.com"
}
