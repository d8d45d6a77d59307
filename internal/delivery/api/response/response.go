// Package response writes the {data|error, meta} envelope every Walkey endpoint answers with.
package response

import (
	"log/slog"
	"net/http"

	"walkey/internal/delivery/api/validator"
	deliverycontext "walkey/internal/delivery/context"
	domainerrors "walkey/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Error codes produced at the HTTP edge rather than by the domain.
const (
	CodeInvalidQuery    = "INVALID_QUERY"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "INVALID_QUERY", "ROUTING_SERVICE_FAILED"
	Message string `json:"message"`           // User-facing message
	Details any    `json:"details,omitempty"` // 4xx only, never for 401/403
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// InvalidQuery rejects unusable query or path parameters.
func InvalidQuery(c echo.Context, message string) error {
	return BadRequest(c, CodeInvalidQuery, message)
}

// BindingError rejects a body that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return BadRequest(c, CodeInvalidInput, message)
}

// ValidationFailed rejects a decoded body that broke its validate tags, listing the fields.
func ValidationFailed(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return BadRequestWithDetails(c, CodeValidationError, verr.Error(), verr.Fields())
	}

	return BadRequest(c, CodeValidationError, err.Error())
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes a domain error in the envelope. Routing and persistence failures
// (5xx) are logged with the request logger since the client only sees the code.
// Errors that are not AppErrors are returned for the HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	status := appErr.HTTPCode()
	if status >= 500 {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).ErrorContext(ctx, "Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Int("status", status),
			slog.String("path", c.Path()),
			slog.Any("error", err))
	}

	return Error(c, status, appErr.ErrorCode(), appErr.Message(), appErrorDetails(err, appErr))
}

func appErrorDetails(err error, appErr domainerrors.AppError) any {
	var waypointErr *domainerrors.InvalidWaypointError
	if errors.As(err, &waypointErr) {
		return map[string]int{"waypoint_index": waypointErr.Index}
	}
	if d := appErr.Details(); d != "" {
		return d
	}

	return nil
}
