package repository

import (
	"context"

	"github.com/newshelton/storefront-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
