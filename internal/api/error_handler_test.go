package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrProjectNotFound, http.StatusNotFound},
		{domain.ErrEmployeeNotFound, http.StatusNotFound},
		{domain.ErrProjectInactive, http.StatusUnprocessableEntity},
		{domain.ErrInvalidTimeRange, http.StatusUnprocessableEntity},
		{domain.ErrInvalidDate, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		rec := handleError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}

		var resp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: decode response: %v", tc.err, err)
		}
		if resp.Error == "" {
			t.Fatalf("%v: expected an error message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusForbidden, "nope"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_Unexpected(t *testing.T) {
	rec := handleError(t, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal cause must not leak, got %q", resp.Error)
	}
}
