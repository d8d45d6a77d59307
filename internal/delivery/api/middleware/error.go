package middleware

import (
	"log/slog"
	"net/http"

	"walkey/internal/delivery/api/response"
	deliverycontext "walkey/internal/delivery/context"
	domainerrors "walkey/internal/domain/errors"
	"walkey/internal/errors"

	"github.com/labstack/echo/v4"
)

// echoStatusCodes maps router and framework rejections onto the envelope's codes.
var echoStatusCodes = map[int]string{
	http.StatusBadRequest:            response.CodeInvalidInput,
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusServiceUnavailable:    "SERVICE_UNAVAILABLE",
}

// ErrorMiddleware is the server's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders err in the envelope unless a response is already on the wire.
// Domain errors keep their own codes; a client that went away gets no body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	if errors.IsCanceled(err) {
		logger.InfoContext(ctx, "Client closed request", slog.String("path", c.Request().URL.Path))

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.HandleAppError(c, err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, ok := echoStatusCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= 500 {
			logger.ErrorContext(ctx, "HTTP error", slog.Int("status", httpErr.Code), slog.Any("error", err))
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, response.CodeInternalError, "Internal server error, please try again later")
}
