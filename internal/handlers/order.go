// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lojaviva/loja-backend/internal/i18n"
	"github.com/lojaviva/loja-backend/internal/models"
	"github.com/lojaviva/loja-backend/internal/services"
	"github.com/lojaviva/loja-backend/internal/utils"
)

type OrderHandler struct {
	checkoutService *services.CheckoutService
}

func NewOrderHandler(checkoutService *services.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// Checkout turns the cart into an order and returns the hosted payment
// link.
// POST /v1/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	order, err := h.checkoutService.Checkout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
		case errors.Is(err, services.ErrPaymentIntent):
			utils.BadGatewayResponse(c, "")
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order":       order,
		"payment_url": h.checkoutService.PaymentURL(order),
		"message":     i18n.T(lang, i18n.KeyOrderCreated, order.ID),
	})
}

// GetOrders lists the user's orders newest first. Orders still awaiting
// payment carry their payment link.
// GET /v1/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orders, err := h.checkoutService.ListOrders(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := make([]gin.H, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		entry := gin.H{"order": o}
		if o.Status == models.OrderStatusAwaitingPayment {
			entry["payment_url"] = h.checkoutService.PaymentURL(o)
		}
		result = append(result, entry)
	}

	utils.SuccessResponse(c, result)
}
