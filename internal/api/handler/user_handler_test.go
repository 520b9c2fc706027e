package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/ports"
)

type stubUserService struct {
	users []domain.User
	user  *domain.User
	err   error

	lastUpdate ports.UpdateUserInput
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	s.lastUpdate = input
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) Remove(ctx context.Context, id string) error {
	return s.err
}

func TestUserHandler_List_OmitsPasswordHash(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	svc := &stubUserService{users: []domain.User{
		{ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: "bcrypt-hash", Role: domain.RoleAdmin},
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(e, http.MethodGet, "/api/usuario", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var raw []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 user, got %d", len(raw))
	}
	for key := range raw[0] {
		if key == "password" || key == "password_hash" {
			t.Fatalf("password material leaked into response: %q", key)
		}
	}
}

func TestUserHandler_Update_ConvertsRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	svc := &stubUserService{user: &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(e, http.MethodPut, "/api/usuario/u1", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastUpdate.Role == nil || *svc.lastUpdate.Role != domain.RoleAdmin {
		t.Fatalf("expected role converted to domain type, got %+v", svc.lastUpdate.Role)
	}
}

func TestUserHandler_Update_RejectsUnknownRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewUserHandler(&stubUserService{})

	c, rec := newTestContext(e, http.MethodPut, "/api/usuario/u1", `{"role":"root"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Update_InvalidRoleFromService(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewUserHandler(&stubUserService{err: domain.ErrInvalidRole})

	c, rec := newTestContext(e, http.MethodPut, "/api/usuario/u1", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid role" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestUserHandler_Update_Duplicate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewUserHandler(&stubUserService{err: domain.ErrUserExists})

	c, rec := newTestContext(e, http.MethodPut, "/api/usuario/u1", `{"username":"taken"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewUserHandler(&stubUserService{err: domain.ErrUserNotFound})

	c, rec := newTestContext(e, http.MethodDelete, "/api/usuario/unknown", "")
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
