package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/stock-api/internal/core/domain"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	token       string
	user        *domain.User
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.user, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	svc := &stubAuthService{user: &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}}
	h := NewAuthHandler(svc)

	body := `{"username":"alice","email":"alice@example.com","password":"supersecret"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Username != "alice" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "supersecret") {
		t.Fatalf("password leaked into response")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	body := `{"username":"alice","email":"alice@example.com","password":"supersecret"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"al","email":"alice@example.com","password":"supersecret"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"supersecret"}`},
		{"short password", `{"username":"alice","email":"alice@example.com","password":"short"}`},
		{"missing fields", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(e, http.MethodPost, "/auth/register", tc.body)
			if err := h.Register(c); err != nil {
				t.Fatalf("register: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	svc := &stubAuthService{
		token: "signed-token",
		user:  &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"supersecret"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	body := `{"email":"alice@example.com","password":"wrongpassword"}`
	c, rec := newTestContext(e, http.MethodPost, "/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid credentials" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}
