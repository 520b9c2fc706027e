package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/ports"
)

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	created, err := repo.Create(context.Background(), &domain.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "old-hash", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := NewUserService(repo)
	password := "new-password-1"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: &password})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == "old-hash" || updated.PasswordHash == password {
		t.Fatalf("expected a fresh hash, got %q", updated.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(password)); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestUserService_Update_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	created, _ := repo.Create(context.Background(), &domain.User{
		Username: "bob", Email: "bob@example.com", Role: domain.RoleUser,
	})

	svc := NewUserService(repo)
	role := domain.Role("superadmin")
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Role: &role}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole for bad role, got %v", err)
	}
}

func TestUserService_Remove_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	if err := svc.Remove(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
