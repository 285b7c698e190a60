// internal/services/errors.go
package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate
// these into HTTP status codes and localized messages.
var (
	// Auth
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrUserNotFound       = errors.New("user not found")

	// Catalog
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")

	// Cart
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrNotCartOwner     = errors.New("cart line belongs to another user")
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 10")

	// Checkout
	ErrEmptyCart     = errors.New("cart is empty, nothing to checkout")
	ErrPaymentIntent = errors.New("payment intent creation failed")

	// Reviews
	ErrDuplicateReview = errors.New("product already reviewed by this user")
	ErrNotPurchased    = errors.New("product was never purchased by this user")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
