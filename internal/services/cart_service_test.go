// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/loja-backend/internal/models"
)

func TestAddLineValidatesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := createTestUser(t, db, "qty@example.com")
	product := createTestProduct(t, db, "Cable", 25.00, 0)

	_, err := svc.AddLine(user.ID, &AddLineRequest{ProductID: product.ID, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddLine(user.ID, &AddLineRequest{ProductID: product.ID, Quantity: 11})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	line, err := svc.AddLine(user.ID, &AddLineRequest{ProductID: product.ID, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, line.Quantity)
}

func TestAddLineUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := createTestUser(t, db, "nothing@example.com")

	_, err := svc.AddLine(user.ID, &AddLineRequest{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddLineNeverMerges(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := createTestUser(t, db, "repeat@example.com")
	product := createTestProduct(t, db, "Pen", 5.00, 0)

	_, err := svc.AddLine(user.ID, &AddLineRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddLine(user.ID, &AddLineRequest{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	lines, err := svc.ListLines(user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 3, lines[1].Quantity)
}

func TestRemoveLineOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	owner := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")
	product := createTestProduct(t, db, "Mug", 35.00, 0)

	line, err := svc.AddLine(owner.ID, &AddLineRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	err = svc.RemoveLine(intruder.ID, line.ID)
	assert.ErrorIs(t, err, ErrNotCartOwner)

	var count int64
	db.Model(&models.CartLine{}).Where("user_id = ?", owner.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.RemoveLine(owner.ID, line.ID))
	db.Model(&models.CartLine{}).Where("user_id = ?", owner.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRemoveLineNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := createTestUser(t, db, "gone@example.com")
	err := svc.RemoveLine(user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrCartLineNotFound)
}

func TestCartTotalUsesFullPrices(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := createTestUser(t, db, "total@example.com")
	promo := createTestProduct(t, db, "Smartphone X", 1999.99, 1799.99)
	plain := createTestProduct(t, db, "Case", 49.90, 0)

	_, err := svc.AddLine(user.ID, &AddLineRequest{ProductID: promo.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddLine(user.ID, &AddLineRequest{ProductID: plain.ID, Quantity: 2})
	require.NoError(t, err)

	lines, err := svc.ListLines(user.ID)
	require.NoError(t, err)

	assert.InDelta(t, 2099.79, svc.Total(lines), 0.001)
}
