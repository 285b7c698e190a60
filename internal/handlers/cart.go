// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lojaviva/loja-backend/internal/i18n"
	"github.com/lojaviva/loja-backend/internal/services"
	"github.com/lojaviva/loja-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart lists the user's cart lines in added order, with the total
// over full unit prices.
// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	lines, err := h.cartService.ListLines(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"lines": lines,
		"total": h.cartService.Total(lines),
	})
}

// AddToCart appends a new line; repeated products stay as separate
// lines.
// POST /v1/cart/lines
func (h *CartHandler) AddToCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	line, err := h.cartService.AddLine(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, services.ErrInvalidQuantity):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"line":    line,
		"message": i18n.T(lang, i18n.KeyCartLineAdded, line.Quantity, line.Product.Name),
	})
}

// RemoveCartLine deletes one of the user's own cart lines.
// DELETE /v1/cart/lines/:id
func (h *CartHandler) RemoveCartLine(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := h.cartService.RemoveLine(userID, lineID); err != nil {
		switch {
		case errors.Is(err, services.ErrCartLineNotFound):
			utils.NotFoundResponse(c, "cart.line")
		case errors.Is(err, services.ErrNotCartOwner):
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyCartNotOwner))
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartLineRemoved),
	})
}
