package auth

import (
	"context"

	"github.com/google/uuid"

	domuser "github.com/moradia-ai/moradia/internal/domain/user"
)

// UserRepository defines the storage contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domuser.User) error
	GetByID(ctx context.Context, id uuid.UUID) (domuser.User, error)
	GetByEmail(ctx context.Context, email string) (domuser.User, error)
}
