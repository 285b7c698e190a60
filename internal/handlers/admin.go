// internal/handlers/admin.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lojaviva/loja-backend/internal/i18n"
	"github.com/lojaviva/loja-backend/internal/services"
	"github.com/lojaviva/loja-backend/internal/utils"
)

type AdminHandler struct {
	catalogService *services.CatalogService
	storageService *services.StorageService
	auditService   *services.AuditService
}

func NewAdminHandler(catalogService *services.CatalogService, storageService *services.StorageService, auditService *services.AuditService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		storageService: storageService,
		auditService:   auditService,
	}
}

// CreateCategory adds a catalog category.
// POST /v1/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCategoryExists))
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"category": category,
		"message":  i18n.T(lang, i18n.KeyCategoryCreated),
	})
}

// ListCategories returns all categories.
// GET /v1/admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, categories)
}

// CreateProduct adds a product to the catalog.
// POST /v1/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.NotFoundResponse(c, "category")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
		"message": i18n.T(lang, i18n.KeyProductCreated),
	})
}

// UpdateProduct applies partial edits to a product.
// PUT /v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	product, err := h.catalogService.UpdateProduct(productID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.NotFoundResponse(c, "category")
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"message": i18n.T(lang, i18n.KeyProductUpdated),
	})
}

// UploadProductImage stores an image and attaches its URL to the
// product.
// POST /v1/admin/products/:id/images
func (h *AdminHandler) UploadProductImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "image"), nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadProductImage(file, header)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	product, err := h.catalogService.AttachImage(productID, result.URL)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"upload":  result,
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
	})
}

// ListAuditLogs pages through the audit trail.
// GET /v1/admin/audit-logs
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	logs, total, err := h.auditService.ListLogs(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(logs, total, params))
}
