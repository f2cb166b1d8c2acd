package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moradia-ai/moradia/internal/domain"
	domuser "github.com/moradia-ai/moradia/internal/domain/user"
)

// Repository persists users in Postgres via GORM.
type Repository struct {
	db *gorm.DB
}

// New creates a user repository.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user.
func (r *Repository) Create(ctx context.Context, u *domuser.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id. Returns domain.ErrUserNotFound when missing.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domuser.User, error) {
	var u domuser.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domuser.User{}, domain.ErrUserNotFound
		}
		return domuser.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail fetches a user by email. Returns domain.ErrUserNotFound when missing.
func (r *Repository) GetByEmail(ctx context.Context, email string) (domuser.User, error) {
	var u domuser.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domuser.User{}, domain.ErrUserNotFound
		}
		return domuser.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}
