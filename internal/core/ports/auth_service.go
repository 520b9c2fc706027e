package ports

import (
	"context"

	"github.com/stockroom/stock-api/internal/core/domain"
)

// AuthService handles registration and credential verification.
type AuthService interface {
	// Register persists a new user with the least-privileged role.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
