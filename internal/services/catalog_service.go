// internal/services/catalog_service.go
package services

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lojaviva/loja-backend/internal/models"
)

// PageSize is the fixed catalog page size. Callers cannot override it.
const PageSize = 5

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type ProductFilter struct {
	MinPrice float64
	MaxPrice float64
	Search   string
	Category string
	Page     int
}

type ProductPage struct {
	Products   []models.Product `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// ProductSales pairs a product with the number of units sold across all
// orders, whatever their payment status.
type ProductSales struct {
	models.Product
	TotalSold int64 `json:"total_sold"`
}

// ListProducts applies the price range, search and category filters,
// then paginates the result. An out-of-range page is clamped into
// [1, totalPages] rather than rejected, so page 0 and page 9999 both
// return content whenever any product matches.
func (s *CatalogService) ListProducts(filter ProductFilter) (*ProductPage, error) {
	query := s.db.Model(&models.Product{}).
		Where("products.price >= ? AND products.price <= ?", filter.MinPrice, filter.MaxPrice)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(products.name) LIKE ?", pattern)
	}

	if filter.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var products []models.Product
	err := query.Preload("Category").
		Order("products.created_at DESC, products.id").
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	fillCategoryNames(products)

	return &ProductPage{
		Products:   products,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *CatalogService) GetProduct(productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Category").First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	product.CategoryName = categoryName(&product)
	return &product, nil
}

// TopSellers ranks products by total units across order lines of every
// order, regardless of payment status, and returns the top five.
func (s *CatalogService) TopSellers() ([]ProductSales, error) {
	var results []ProductSales
	err := s.db.Model(&models.Product{}).
		Select("products.*, SUM(order_lines.quantity) AS total_sold").
		Joins("JOIN order_lines ON order_lines.product_id = products.id").
		Where("order_lines.deleted_at IS NULL").
		Group("products.id").
		Order("total_sold DESC").
		Limit(5).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].CategoryName = categoryName(&results[i].Product)
	}
	return results, nil
}

// TopRated returns the five best-rated products among those with at
// least five ratings. Fewer ratings than that is too thin a sample to
// rank on.
func (s *CatalogService) TopRated() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("rating_count >= ?", 5).
		Order("avg_rating DESC").
		Limit(5).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	fillCategoryNames(products)
	return products, nil
}

// Cheapest returns the five lowest-priced products with a positive
// price.
func (s *CatalogService) Cheapest() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("price > 0").
		Order("price ASC").
		Limit(5).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	fillCategoryNames(products)
	return products, nil
}

// ActivePromotions returns the five products whose promo price
// undercuts their unit price by the largest absolute amount.
func (s *CatalogService) ActivePromotions() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("promo_price > 0 AND promo_price < price").
		Order("(price - promo_price) DESC").
		Limit(5).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	fillCategoryNames(products)
	return products, nil
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func (s *CatalogService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	var existing models.Category
	err := s.db.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return nil, ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{Name: req.Name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, err
	}

	logrus.WithField("category", category.Name).Info("Category created")
	return category, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=255"`
	Description string     `json:"description" validate:"max=5000"`
	Price       float64    `json:"price" validate:"required,gt=0"`
	PromoPrice  float64    `json:"promo_price" validate:"gte=0"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Images      []string   `json:"images"`
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PromoPrice:  req.PromoPrice,
		CategoryID:  req.CategoryID,
		Images:      pq.StringArray(req.Images),
	}
	if err := s.db.Create(product).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product created")

	return product, nil
}

type UpdateProductRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Price       *float64   `json:"price" validate:"omitempty,gt=0"`
	PromoPrice  *float64   `json:"promo_price" validate:"omitempty,gte=0"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

// UpdateProduct applies partial edits. The rating aggregates are owned
// by the review ledger and are never written here.
func (s *CatalogService) UpdateProduct(productID uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.PromoPrice != nil {
		updates["promo_price"] = *req.PromoPrice
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		updates["category_id"] = *req.CategoryID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &product, nil
}

// AttachImage appends an image URL to the product's image list.
func (s *CatalogService) AttachImage(productID uuid.UUID, url string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product.Images = append(product.Images, url)
	if err := s.db.Model(&product).Update("images", product.Images).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListReviews returns a product's reviews, newest first, with reviewer
// names preloaded.
func (s *CatalogService) ListReviews(productID uuid.UUID) ([]models.Review, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var reviews []models.Review
	err := s.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func fillCategoryNames(products []models.Product) {
	for i := range products {
		products[i].CategoryName = categoryName(&products[i])
	}
}

func categoryName(p *models.Product) string {
	if p.Category != nil && p.Category.Name != "" {
		return p.Category.Name
	}
	return "uncategorized"
}
