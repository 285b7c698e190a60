// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailTaken         = "auth.email_taken"
	KeyAuthPasswordMismatch   = "auth.password_mismatch"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// User Management
	KeyUserNotFound = "user.not_found"

	// Catalog
	KeyProductCreated   = "product.created"
	KeyProductUpdated   = "product.updated"
	KeyProductNotFound  = "product.not_found"
	KeyCategoryCreated  = "category.created"
	KeyCategoryExists   = "category.exists"
	KeyCategoryNotFound = "category.not_found"

	// Cart
	KeyCartLineAdded    = "cart.line_added"
	KeyCartLineRemoved  = "cart.line_removed"
	KeyCartLineNotFound = "cart.line_not_found"
	KeyCartNotOwner     = "cart.not_owner"
	KeyCartEmpty        = "cart.empty"

	// Orders / checkout
	KeyOrderCreated  = "order.created"
	KeyOrderNotFound = "order.not_found"

	// Reviews
	KeyReviewCreated      = "review.created"
	KeyReviewDuplicate    = "review.duplicate"
	KeyReviewNotPurchased = "review.not_purchased"

	// Payments
	KeyPaymentFailed = "payment.failed"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
