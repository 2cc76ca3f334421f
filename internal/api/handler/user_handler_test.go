package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/catalog-api/internal/core/domain"
	"github.com/skillforge/catalog-api/internal/core/ports"
)

type stubDirectoryService struct {
	lastCreate ports.CreateUserInput
	createErr  error
}

func (s *stubDirectoryService) CreateUser(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.lastCreate = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.User{
		ID:          "usr_0001",
		Email:       strings.ToLower(input.Email),
		DisplayName: input.DisplayName,
		IsAdmin:     input.IsAdmin,
	}, nil
}

func (s *stubDirectoryService) Resolve(_ context.Context, userID string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func newUserCreateContext(e *echo.Echo, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserCreate_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubDirectoryService{}
	h := NewUserHandler(svc)

	c, rec := newUserCreateContext(e, `{"email":"alice@example.com","display_name":"Alice","is_admin":true}`)
	c.Set("user_id", "admin1")
	c.Set("is_admin", true)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.ID != "usr_0001" || body.Email != "alice@example.com" || !body.IsAdmin {
		t.Errorf("unexpected payload: %+v", body)
	}
	if svc.lastCreate.ActorID != "admin1" {
		t.Errorf("actor not taken from identity context: %+v", svc.lastCreate)
	}
}

func TestUserCreate_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewUserHandler(&stubDirectoryService{})

	for _, payload := range []string{
		`{"display_name":"No Email"}`,
		`{"email":"not-an-email","display_name":"Bad Email"}`,
		`{"email":"ok@example.com"}`,
	} {
		c, _ := newUserCreateContext(e, payload)
		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("payload %s: expected 400, got %v", payload, err)
		}
	}
}

func TestUserCreate_DuplicatePropagates(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubDirectoryService{createErr: domain.ErrUserExists}
	h := NewUserHandler(svc)

	c, _ := newUserCreateContext(e, `{"email":"bob@example.com","display_name":"Bob"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}
