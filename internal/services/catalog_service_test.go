// internal/services/catalog_service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/loja-backend/internal/models"
)

func TestListProductsPaginatesInFixedPages(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	for i := 0; i < 12; i++ {
		createTestProduct(t, db, fmt.Sprintf("Gadget %02d", i), 100.00+float64(i), 0)
	}

	filter := ProductFilter{MaxPrice: 10000}

	var seen []uuid.UUID
	for page := 1; page <= 3; page++ {
		filter.Page = page
		result, err := svc.ListProducts(filter)
		require.NoError(t, err)
		assert.Equal(t, page, result.Page)
		assert.EqualValues(t, 12, result.Total)
		assert.Equal(t, 3, result.TotalPages)
		for _, p := range result.Products {
			seen = append(seen, p.ID)
		}
	}

	// Concatenating the pages walks every product exactly once.
	require.Len(t, seen, 12)
	unique := make(map[uuid.UUID]bool, len(seen))
	for _, id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, 12)

	filter.Page = 1
	first, err := svc.ListProducts(filter)
	require.NoError(t, err)
	assert.Len(t, first.Products, PageSize)
	filter.Page = 3
	last, err := svc.ListProducts(filter)
	require.NoError(t, err)
	assert.Len(t, last.Products, 2)
}

func TestListProductsClampsOutOfRangePages(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	for i := 0; i < 7; i++ {
		createTestProduct(t, db, fmt.Sprintf("Item %d", i), 50.00, 0)
	}

	result, err := svc.ListProducts(ProductFilter{MaxPrice: 10000, Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.NotEmpty(t, result.Products)

	result, err = svc.ListProducts(ProductFilter{MaxPrice: 10000, Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Products, PageSize)
}

func TestListProductsSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	createTestProduct(t, db, "Smartphone X", 1999.99, 0)
	createTestProduct(t, db, "Notebook Pro", 4500.00, 0)

	result, err := svc.ListProducts(ProductFilter{MaxPrice: 10000, Search: "SMART", Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Smartphone X", result.Products[0].Name)
}

func TestListProductsPriceRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	createTestProduct(t, db, "Cheap", 20.00, 0)
	createTestProduct(t, db, "Mid", 500.00, 0)
	createTestProduct(t, db, "Expensive", 8000.00, 0)

	result, err := svc.ListProducts(ProductFilter{MinPrice: 100, MaxPrice: 1000, Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Mid", result.Products[0].Name)
}

func TestListProductsCategoryFilterAndFallbackName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	category, err := svc.CreateCategory(&CreateCategoryRequest{Name: "Eletrônicos"})
	require.NoError(t, err)

	inCategory := createTestProduct(t, db, "TV 50", 2500.00, 0)
	require.NoError(t, db.Model(inCategory).Update("category_id", category.ID).Error)
	createTestProduct(t, db, "Loose Item", 10.00, 0)

	result, err := svc.ListProducts(ProductFilter{MaxPrice: 10000, Category: "Eletrônicos", Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "TV 50", result.Products[0].Name)
	assert.Equal(t, "Eletrônicos", result.Products[0].CategoryName)

	all, err := svc.ListProducts(ProductFilter{MaxPrice: 10000, Page: 1})
	require.NoError(t, err)
	for _, p := range all.Products {
		if p.Name == "Loose Item" {
			assert.Equal(t, "uncategorized", p.CategoryName)
		}
	}
}

func TestActivePromotions(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	big := createTestProduct(t, db, "Smartphone X", 1999.99, 1799.99)
	small := createTestProduct(t, db, "Fone BT", 100.00, 90.00)
	createTestProduct(t, db, "No Promo", 300.00, 0)
	createTestProduct(t, db, "Bad Promo", 200.00, 250.00)

	promos, err := svc.ActivePromotions()
	require.NoError(t, err)
	require.Len(t, promos, 2)

	// Steepest absolute discount first
	assert.Equal(t, big.ID, promos[0].ID)
	assert.Equal(t, small.ID, promos[1].ID)

	assert.InDelta(t, 10.0, promos[0].DiscountPercent(), 0.01)
	assert.InDelta(t, 10.0, promos[1].DiscountPercent(), 0.01)
}

func TestActivePromotionsCapsAtFive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	for i := 0; i < 7; i++ {
		createTestProduct(t, db, fmt.Sprintf("Deal %d", i), 100.00+float64(10*i), 50.00)
	}

	promos, err := svc.ActivePromotions()
	require.NoError(t, err)
	require.Len(t, promos, 5)

	// The five steepest discounts survive the cut.
	for _, p := range promos {
		assert.GreaterOrEqual(t, p.Price, 120.00)
	}
}

func TestTopRatedRequiresEnoughRatings(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	popular := createTestProduct(t, db, "Popular", 100.00, 0)
	require.NoError(t, db.Model(popular).Updates(map[string]interface{}{
		"avg_rating":   4.2,
		"rating_count": 7,
	}).Error)

	niche := createTestProduct(t, db, "Niche", 100.00, 0)
	require.NoError(t, db.Model(niche).Updates(map[string]interface{}{
		"avg_rating":   5.0,
		"rating_count": 2,
	}).Error)

	top, err := svc.TopRated()
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, popular.ID, top[0].ID)
}

func TestCheapestSkipsZeroPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	createTestProduct(t, db, "Freebie", 0, 0)
	for i := 0; i < 6; i++ {
		createTestProduct(t, db, fmt.Sprintf("Paid %d", i), float64(10*(i+1)), 0)
	}

	cheapest, err := svc.Cheapest()
	require.NoError(t, err)
	require.Len(t, cheapest, 5)
	assert.Equal(t, "Paid 0", cheapest[0].Name)
	for _, p := range cheapest {
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestTopSellersCountsUnitsAcrossOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	hot := createTestProduct(t, db, "Hot", 100.00, 0)
	warm := createTestProduct(t, db, "Warm", 100.00, 0)
	createTestProduct(t, db, "Unsold", 100.00, 0)

	user := createTestUser(t, db, "sales@example.com")
	orders := []struct {
		productID uuid.UUID
		qty       int
		status    models.OrderStatus
	}{
		{hot.ID, 5, models.OrderStatusPaid},
		{hot.ID, 3, models.OrderStatusAwaitingPayment},
		{warm.ID, 4, models.OrderStatusFailed},
	}

	for _, o := range orders {
		order := &models.Order{
			UserID: user.ID,
			Total:  100.00 * float64(o.qty),
			Status: o.status,
		}
		require.NoError(t, db.Create(order).Error)
		require.NoError(t, db.Create(&models.OrderLine{
			OrderID:   order.ID,
			ProductID: o.productID,
			Quantity:  o.qty,
			UnitPrice: 100.00,
		}).Error)
	}

	top, err := svc.TopSellers()
	require.NoError(t, err)
	require.Len(t, top, 2)

	// All order statuses count toward units sold.
	assert.Equal(t, hot.ID, top[0].ID)
	assert.EqualValues(t, 8, top[0].TotalSold)
	assert.Equal(t, warm.ID, top[1].ID)
	assert.EqualValues(t, 4, top[1].TotalSold)
}

func TestCreateCategoryRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateCategory(&CreateCategoryRequest{Name: "Livros"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(&CreateCategoryRequest{Name: "Livros"})
	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestUpdateProductNeverTouchesRatings(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	product := createTestProduct(t, db, "Stable", 100.00, 0)
	require.NoError(t, db.Model(product).Updates(map[string]interface{}{
		"avg_rating":   4.5,
		"rating_count": 9,
	}).Error)

	newPrice := 120.00
	_, err := svc.UpdateProduct(product.ID, &UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	var refreshed models.Product
	require.NoError(t, db.First(&refreshed, "id = ?", product.ID).Error)
	assert.InDelta(t, 120.00, refreshed.Price, 0.001)
	assert.InDelta(t, 4.5, refreshed.AvgRating, 0.001)
	assert.EqualValues(t, 9, refreshed.RatingCount)
}

func TestAttachImageAppends(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	product := createTestProduct(t, db, "Pictured", 100.00, 0)

	updated, err := svc.AttachImage(product.ID, "https://cdn.example.com/a.jpg")
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)

	updated, err = svc.AttachImage(product.ID, "https://cdn.example.com/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, []string(updated.Images))
}
