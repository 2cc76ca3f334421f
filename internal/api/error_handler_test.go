package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skillforge/catalog-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog-badges", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &domain.FieldError{Field: "category", Value: "bogus"}, http.StatusBadRequest},
		{"forbidden", fmt.Errorf("status filter requires admin rights: %w", domain.ErrForbidden), http.StatusForbidden},
		{"badge not found", domain.ErrBadgeNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"unknown creator", fmt.Errorf("created_by %q: %w", "ghost", domain.ErrUnknownCreator), http.StatusUnprocessableEntity},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Error("error envelope must carry a message")
			}
		})
	}
}

func TestErrorHandler_ValidationMessageNamesParameter(t *testing.T) {
	_, msg := renderError(t, &domain.FieldError{Field: "limit", Value: "abc"})
	if want := `invalid value "abc" for parameter limit`; msg != want {
		t.Errorf("expected %q, got %q", want, msg)
	}
}

func TestErrorHandler_InternalDetailsNotLeaked(t *testing.T) {
	_, msg := renderError(t, errors.New("dial tcp 10.0.0.5:27017 refused"))
	if msg != "internal server error" {
		t.Errorf("internal cause leaked to client: %q", msg)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "unknown caller"))
	if code != http.StatusUnauthorized || msg != "unknown caller" {
		t.Errorf("expected 401 unknown caller, got %d %q", code, msg)
	}
}
