package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flowerforecast/internal/logging"
	"github.com/dharmasatrya/flowerforecast/internal/models"
	"github.com/dharmasatrya/flowerforecast/pkg/apperror"
)

const (
	errRateLimited      = "rate_limited"
	errMethodNotAllowed = "method_not_allowed"
	errBadRequest       = "bad_request"
)

func success(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, models.APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// invalidRequest is a 400 carrying per-field details.
type invalidRequest struct {
	message string
	fields  []models.FieldError
}

func (e *invalidRequest) Error() string {
	return e.message
}

// NewHTTPErrorHandler maps handler errors onto the error envelope. Internal
// error details are only exposed when verbose is set.
func NewHTTPErrorHandler(verbose bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := toErrorResponse(err, verbose)
		if resp.Code >= http.StatusInternalServerError {
			logging.Ctx(c.Request().Context()).Error().Err(err).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Msg("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(resp.Code)
		} else {
			writeErr = c.JSON(resp.Code, resp)
		}
		if writeErr != nil {
			logging.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}

func toErrorResponse(err error, verbose bool) models.ErrorResponse {
	resp := models.ErrorResponse{
		Success:   false,
		Timestamp: time.Now().UTC(),
	}

	var (
		invalid *invalidRequest
		verr    models.ValidationError
		appErr  *apperror.Error
		httpErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &invalid):
		resp.Code = http.StatusBadRequest
		resp.Error = apperror.CodeValidation
		resp.Message = invalid.message
		resp.Errors = invalid.fields
	case errors.As(err, &verr):
		resp.Code = http.StatusBadRequest
		resp.Error = apperror.CodeValidation
		resp.Message = verr.Error()
	case errors.As(err, &appErr):
		resp.Error = appErr.Code
		resp.Message = appErr.Message
		switch appErr.Code {
		case apperror.CodeValidation:
			resp.Code = http.StatusBadRequest
		case apperror.CodeNotFound:
			resp.Code = http.StatusNotFound
		default:
			resp.Code = http.StatusInternalServerError
		}
	case errors.As(err, &httpErr):
		resp.Code = httpErr.Code
		resp.Error = httpErrorCode(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			resp.Message = msg
		} else {
			resp.Message = http.StatusText(httpErr.Code)
		}
	default:
		resp.Code = http.StatusInternalServerError
		resp.Error = apperror.CodeInternal
		resp.Message = "Internal Server Error"
	}

	if resp.Code >= http.StatusInternalServerError && verbose {
		resp.Message = err.Error()
	}
	return resp
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return apperror.CodeNotFound
	case http.StatusMethodNotAllowed:
		return errMethodNotAllowed
	case http.StatusTooManyRequests:
		return errRateLimited
	case http.StatusBadRequest:
		return errBadRequest
	default:
		if status >= http.StatusInternalServerError {
			return apperror.CodeInternal
		}
		return http.StatusText(status)
	}
}
