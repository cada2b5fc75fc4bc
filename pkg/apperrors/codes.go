package apperrors

// Error codes grouped by domain
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserType  ErrorCode = "INVALID_USER_TYPE"

	// Resources
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeEmailNotFound    ErrorCode = "EMAIL_NOT_FOUND"
	CodeProductNotFound  ErrorCode = "PRODUCT_NOT_FOUND"
	CodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	CodeOrderNotFound    ErrorCode = "ORDER_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeEmptyOrder         ErrorCode = "EMPTY_ORDER"

	// System errors
	CodeInternalError  ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError  ErrorCode = "DATABASE_ERROR"
	CodeDeliveryFailed ErrorCode = "DELIVERY_FAILED"
)
