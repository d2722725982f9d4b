package response

import (
	"errors"

	"github.com/ferremax/inventory-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape of every failed request. CurrentStock and
// RequestedAdjustment are only populated for insufficient-stock failures,
// Errors only for validation failures.
type ErrorResponse struct {
	Message             string                `json:"message"`
	CurrentStock        *float64              `json:"currentStock,omitempty"`
	RequestedAdjustment *float64              `json:"requestedAdjustment,omitempty"`
	Errors              []errs.FieldViolation `json:"errors,omitempty"`
}

func WriteSuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{Message: err.Error()}

	var stockErr *errs.InsufficientStockError
	if errors.As(err, &stockErr) {
		resp.CurrentStock = &stockErr.CurrentStock
		resp.RequestedAdjustment = &stockErr.RequestedAdjustment
	}

	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		resp.Errors = validationErr.Violations
	}

	return c.JSON(statusCode, resp)
}
