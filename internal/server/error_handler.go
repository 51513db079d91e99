package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"personal-assistant/internal/errors"
)

// errorResponse matches the {"detail": ...} error shape clients expect.
type errorResponse struct {
	Detail string `json:"detail"`
}

// handleError is the single translation point from application errors to
// HTTP responses.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "internal server error"

	if appErr, ok := errors.AsAppError(err); ok {
		detail = appErr.Error()
		switch appErr.Type {
		case errors.ErrorTypeNotFound:
			status = http.StatusNotFound
		case errors.ErrorTypeValidation:
			status = http.StatusUnprocessableEntity
		case errors.ErrorTypeUnauthorized:
			status = http.StatusUnauthorized
		case errors.ErrorTypeUpstream:
			// Relay the external service's status code.
			if code := errors.UpstreamStatusCode(err); code != 0 {
				status = code
			}
		default:
			status = http.StatusInternalServerError
		}
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			detail = msg
		} else {
			detail = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err), zap.String("uri", c.Request().RequestURI))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errorResponse{Detail: detail})
}
