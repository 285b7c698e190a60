// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lojaviva/loja-backend/internal/services"
	"github.com/lojaviva/loja-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetProducts lists the catalog with filters and fixed-size pages.
// GET /v1/products?min_price=&max_price=&search=&category=&page=
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	filter := services.ProductFilter{
		MinPrice: parseFloat(c.DefaultQuery("min_price", "0"), 0),
		MaxPrice: parseFloat(c.DefaultQuery("max_price", "10000"), 10000),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     parseInt(c.DefaultQuery("page", "1"), 1),
	}

	page, err := h.catalogService.ListProducts(filter)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponseWithMeta(c, page.Products, gin.H{
		"pagination": gin.H{
			"page":        page.Page,
			"limit":       services.PageSize,
			"total":       page.Total,
			"total_pages": page.TotalPages,
		},
	})
}

// GetProduct returns one product.
// GET /v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, product)
}

// GetTopSellers ranks by units sold across all orders.
// GET /v1/products/top-sellers
func (h *CatalogHandler) GetTopSellers(c *gin.Context) {
	products, err := h.catalogService.TopSellers()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, products)
}

// GetTopRated ranks by average rating among well-reviewed products.
// GET /v1/products/top-rated
func (h *CatalogHandler) GetTopRated(c *gin.Context) {
	products, err := h.catalogService.TopRated()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, products)
}

// GetCheapest lists the lowest-priced products.
// GET /v1/products/cheapest
func (h *CatalogHandler) GetCheapest(c *gin.Context) {
	products, err := h.catalogService.Cheapest()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, products)
}

// GetPromotions lists products with an active promo price, including
// the displayed discount percentage.
// GET /v1/products/promotions
func (h *CatalogHandler) GetPromotions(c *gin.Context) {
	products, err := h.catalogService.ActivePromotions()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := make([]gin.H, 0, len(products))
	for i := range products {
		p := &products[i]
		result = append(result, gin.H{
			"product":          p,
			"discount_percent": p.DiscountPercent(),
		})
	}

	utils.SuccessResponse(c, result)
}

// GetProductReviews lists a product's reviews, newest first.
// GET /v1/products/:id/reviews
func (h *CatalogHandler) GetProductReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	reviews, err := h.catalogService.ListReviews(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, reviews)
}

func parseFloat(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
