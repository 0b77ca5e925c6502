package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Marketplace Business Logic (MKT) ----

func ErrNotFound(entity string) *AppError {
	return New("MKT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNotSaleOwner() *AppError {
	return New("MKT_002", "Caller is not the sale owner", http.StatusForbidden)
}

func ErrNotAllowlisted() *AppError {
	return New("MKT_003", "Asset issuer is not allowlisted", http.StatusForbidden)
}

func ErrPriceTooLow(minPrice string) *AppError {
	return New("MKT_004", fmt.Sprintf("Listing price is below the issuer floor of %s", minPrice), http.StatusUnprocessableEntity)
}

func ErrZeroDeposit() *AppError {
	return New("MKT_005", "Attached deposit must be greater than 0", http.StatusBadRequest)
}

func ErrInsufficientOffer(price string) *AppError {
	return New("MKT_006", fmt.Sprintf("Deposit must be greater than or equal to the listing price of %s", price), http.StatusPaymentRequired)
}

func ErrSelfPurchase() *AppError {
	return New("MKT_007", "Cannot buy your own sale", http.StatusConflict)
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidToken() *AppError {
	return New("SEC_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrConfirmationRequired() *AppError {
	return New("SEC_002", "Single-use confirmation nonce is required", http.StatusForbidden)
}

func ErrConfirmationReplayed() *AppError {
	return New("SEC_003", "Confirmation nonce has already been used", http.StatusForbidden)
}

func ErrAdminOnly() *AppError {
	return New("SEC_004", "Administrative privileges required", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrDatabaseError wraps a storage failure.
func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("MKT_400", message, http.StatusBadRequest)
}
