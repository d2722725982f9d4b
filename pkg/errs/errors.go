package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer    = errors.New("Internal server error")
	ErrClient            = errors.New("Bad request")
	ErrProductNotFound   = errors.New("Product not found")
	ErrUserNotFound      = errors.New("User not found")
	ErrSKUAlreadyExists  = errors.New("SKU already exists")
	ErrEmailAlreadyUsed  = errors.New("Email already exists")
	ErrInvalidProductID  = errors.New("Invalid product ID format")
	ErrInvalidUserID     = errors.New("Invalid user ID format")
	ErrInvalidAge        = errors.New("Age must be a valid number")
	ErrInvalidAdjustment = errors.New("Adjustment must be a number")
)

var errorMap = map[error]int{
	ErrInternalServer:    ErrStatusInternalServer,
	ErrClient:            ErrStatusClient,
	ErrProductNotFound:   ErrStatusNotFound,
	ErrUserNotFound:      ErrStatusNotFound,
	ErrSKUAlreadyExists:  ErrStatusConflict,
	ErrEmailAlreadyUsed:  ErrStatusConflict,
	ErrInvalidProductID:  ErrStatusClient,
	ErrInvalidUserID:     ErrStatusClient,
	ErrInvalidAge:        ErrStatusClient,
	ErrInvalidAdjustment: ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ErrStatusClient
	}

	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		return ErrStatusClient
	}

	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}

	return ErrStatusInternalServer
}

// FieldViolation is a single schema-level constraint failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every constraint violated by a document. It is
// produced by the same validation pass on create and on merged partial update.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return fmt.Sprintf("Validation failed: %s", strings.Join(messages, ", "))
}

// InsufficientStockError reports a stock adjustment that would drive the
// stock below zero, echoing the observed stock and the requested delta.
type InsufficientStockError struct {
	CurrentStock        float64
	RequestedAdjustment float64
}

func (e *InsufficientStockError) Error() string {
	return "Insufficient stock"
}
