package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/ports"
)

// UserService implements the admin-facing user resource.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the provided fields and returns the refreshed record. A new
// password is hashed here so the plaintext never reaches the store.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	upd := ports.UserUpdate{Role: input.Role}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		upd.Username = &username
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		upd.Email = &email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *UserService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
