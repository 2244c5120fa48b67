package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flowerforecast/internal/models"
	"github.com/dharmasatrya/flowerforecast/pkg/apperror"
)

func TestToErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		errCode string
		message string
	}{
		{"validation constant", models.ErrMonthRequired, http.StatusBadRequest, apperror.CodeValidation, "month is required"},
		{"wrapped validation", fmt.Errorf("range: %w", models.ErrRangeInverted), http.StatusBadRequest, apperror.CodeValidation, string(models.ErrRangeInverted)},
		{"app not found", apperror.NotFound("Location not found: x", nil), http.StatusNotFound, apperror.CodeNotFound, "Location not found: x"},
		{"app validation", apperror.Validation("bad", nil), http.StatusBadRequest, apperror.CodeValidation, "bad"},
		{"app internal", apperror.Wrap(apperror.CodeInternal, "oops", nil), http.StatusInternalServerError, apperror.CodeInternal, "oops"},
		{"echo 404", echo.ErrNotFound, http.StatusNotFound, apperror.CodeNotFound, "Not Found"},
		{"echo 405", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "method_not_allowed", "Method Not Allowed"},
		{"echo 429", echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests, "rate_limited", "slow down"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, apperror.CodeInternal, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := toErrorResponse(tt.err, false)
			require.False(t, resp.Success)
			require.Equal(t, tt.code, resp.Code)
			require.Equal(t, tt.errCode, resp.Error)
			require.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestToErrorResponse_VerboseExposesInternalErrors(t *testing.T) {
	resp := toErrorResponse(errors.New("disk on fire"), true)
	require.Equal(t, "disk on fire", resp.Message)

	resp = toErrorResponse(models.ErrInvalidDate, true)
	require.Equal(t, string(models.ErrInvalidDate), resp.Message)
}

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	month := 0
	year := 1999

	require.NoError(t, v.Validate(&models.SearchRequest{Month: &month}))

	err := v.Validate(&models.SearchRequest{Year: &year})
	var invalid *invalidRequest
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.fields, 1)
	require.Equal(t, "year", invalid.fields[0].Field)
	require.Equal(t, "must be at least 2015", invalid.fields[0].Message)

	err = v.Validate(&models.ForecastRangeRequest{Start: "2025-10-01"})
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "end", invalid.fields[0].Field)
	require.Equal(t, "end is required", invalid.fields[0].Message)
}
