package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrInvalidToken   = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}

	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid username or password"}

	// Settlement taxonomy. All are recoverable and reported to the
	// caller; none leaves partial state behind.
	ErrCustomerNotFound          = &AppError{Code: http.StatusNotFound, Message: "Customer not found"}
	ErrItemNotFound              = &AppError{Code: http.StatusNotFound, Message: "Catalog item not found"}
	ErrInsufficientFunds         = &AppError{Code: http.StatusUnprocessableEntity, Message: "Insufficient funds on the selected balance"}
	ErrInsufficientCombinedFunds = &AppError{Code: http.StatusUnprocessableEntity, Message: "Insufficient funds across all balances"}
	ErrInvalidAmount             = &AppError{Code: http.StatusBadRequest, Message: "Invalid payment amount"}
	ErrDuplicateCartItem         = &AppError{Code: http.StatusConflict, Message: "Item is already in the cart"}
	ErrNothingToPay              = &AppError{Code: http.StatusBadRequest, Message: "Nothing left to pay"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
