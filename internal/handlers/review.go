// internal/handlers/review.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lojaviva/loja-backend/internal/i18n"
	"github.com/lojaviva/loja-backend/internal/services"
	"github.com/lojaviva/loja-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// SubmitReview records a purchase-gated, once-per-product review.
// POST /v1/products/:id/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	review, err := h.reviewService.SubmitReview(userID, productID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, services.ErrDuplicateReview):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyReviewDuplicate))
		case errors.Is(err, services.ErrNotPurchased):
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyReviewNotPurchased))
		case errors.Is(err, services.ErrInvalidRating):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"review":  review,
		"message": i18n.T(lang, i18n.KeyReviewCreated),
	})
}
