package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users       map[int64]*domain.User
	emailIndex  map[string]*domain.User
	nextID      int64
	createError error
	getError    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[int64]*domain.User),
		emailIndex: make(map[string]*domain.User),
		nextID:     1,
	}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	if _, exists := r.emailIndex[user.Email]; exists {
		return domain.ErrDuplicateAccount
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.getError != nil {
		return nil, r.getError
	}
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

func TestAuthService_Register(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := NewAuthService(userRepo, &AuthServiceConfig{BcryptCost: bcrypt.MinCost})

	t.Run("successful registration", func(t *testing.T) {
		req := &dto.RegisterRequest{
			FirstName:       "Asha",
			LastName:        "Khan",
			Email:           "asha@example.com",
			Phone:           "0300-1234567",
			Password:        "longenough",
			ConfirmPassword: "longenough",
		}

		user, err := svc.Register(context.Background(), req)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		if user.ID == 0 {
			t.Error("Register() did not assign an ID")
		}
		if user.PasswordHash == req.Password {
			t.Error("Register() stored the plaintext password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			t.Errorf("Register() stored hash does not verify: %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := &dto.RegisterRequest{
			FirstName:       "Other",
			LastName:        "Person",
			Email:           "asha@example.com",
			Password:        "different1",
			ConfirmPassword: "different1",
		}

		_, err := svc.Register(context.Background(), req)
		if !errors.Is(err, domain.ErrDuplicateAccount) {
			t.Errorf("Register() error = %v, want %v", err, domain.ErrDuplicateAccount)
		}
	})

	t.Run("duplicate surfaced by constraint", func(t *testing.T) {
		// Simulates losing the check-then-insert race: the existence
		// check passes but the insert hits the unique constraint.
		repo := newMockUserRepository()
		repo.createError = domain.ErrDuplicateAccount
		raceSvc := NewAuthService(repo, &AuthServiceConfig{BcryptCost: bcrypt.MinCost})

		req := &dto.RegisterRequest{
			FirstName:       "Race",
			LastName:        "Loser",
			Email:           "race@example.com",
			Password:        "longenough",
			ConfirmPassword: "longenough",
		}

		_, err := raceSvc.Register(context.Background(), req)
		if !errors.Is(err, domain.ErrDuplicateAccount) {
			t.Errorf("Register() error = %v, want %v", err, domain.ErrDuplicateAccount)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := NewAuthService(userRepo, &AuthServiceConfig{BcryptCost: bcrypt.MinCost})

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct-pw"), bcrypt.MinCost)
	testUser := &domain.User{
		ID:           1,
		FirstName:    "Asha",
		LastName:     "Khan",
		Email:        "login@example.com",
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	userRepo.users[testUser.ID] = testUser
	userRepo.emailIndex[testUser.Email] = testUser

	t.Run("successful login", func(t *testing.T) {
		req := &dto.LoginRequest{Email: "login@example.com", Password: "correct-pw"}

		user, err := svc.Login(context.Background(), req)
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if user.ID != testUser.ID {
			t.Errorf("Login() user ID = %v, want %v", user.ID, testUser.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := &dto.LoginRequest{Email: "login@example.com", Password: "wrong-pw"}

		_, err := svc.Login(context.Background(), req)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("unknown email yields same error as wrong password", func(t *testing.T) {
		req := &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}

		_, err := svc.Login(context.Background(), req)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("repository error is not masked as bad credentials", func(t *testing.T) {
		userRepo.getError = errors.New("connection refused")
		defer func() { userRepo.getError = nil }()

		req := &dto.LoginRequest{Email: "login@example.com", Password: "correct-pw"}

		_, err := svc.Login(context.Background(), req)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			t.Error("Login() reported invalid credentials for a repository failure")
		}
		if err == nil {
			t.Error("Login() error = nil, want repository error")
		}
	})
}
