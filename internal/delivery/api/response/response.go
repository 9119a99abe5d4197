// Package response writes the staffing API envelopes:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"fmt"
	"net/http"

	deliverycontext "staffing/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Codes the handlers emit before a request reaches a usecase. Domain failures
// carry their own codes (SHIFT_NOT_FOUND, CANCELLATION_FAILED, ...).
const (
	CodeInvalidID    = "INVALID_ID"
	CodeInvalidInput = "INVALID_INPUT"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeHTTPError    = "HTTP_ERROR"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // 4xx only, never 401/403
}

type MetaInfo struct {
	RequestID string `json:"request_id,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.RequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for server errors and
// for authentication or authorization failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// InvalidID rejects a malformed path id, e.g. InvalidID(c, "shift").
func InvalidID(c echo.Context, subject string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidID, fmt.Sprintf("Invalid %s ID", subject), nil)
}

// InvalidInput rejects a body that could not be bound, e.g. InvalidInput(c, "rating").
func InvalidInput(c echo.Context, what string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, fmt.Sprintf("Invalid %s input", what), nil)
}

// InvalidToken rejects an authenticated request whose subject is unusable.
func InvalidToken(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, CodeInvalidToken, "Invalid user ID in token", nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
