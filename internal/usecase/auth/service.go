package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/moradia-ai/moradia/internal/domain"
	domuser "github.com/moradia-ai/moradia/internal/domain/user"
)

const minPasswordLen = 6

// Claims are the JWT claims issued at login. The subject is the user id,
// the identity the rest of the system treats as opaque.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput carries the registration fields.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in RegisterInput) validate() error {
	var bad []string
	if strings.TrimSpace(in.Name) == "" {
		bad = append(bad, "name")
	}
	if !strings.Contains(in.Email, "@") {
		bad = append(bad, "email")
	}
	if len(in.Password) < minPasswordLen {
		bad = append(bad, "password")
	}
	if len(bad) > 0 {
		return domain.NewValidationError(bad...)
	}
	return nil
}

// Service handles registration, login, and token issuance.
type Service struct {
	users    UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// New creates an auth service.
func New(users UserRepository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{users: users, secret: secret, tokenTTL: tokenTTL, now: time.Now}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domuser.User, error) {
	if err := in.validate(); err != nil {
		return domuser.User{}, err
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return domuser.User{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domuser.User{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domuser.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domuser.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domuser.RoleUser,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return domuser.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies credentials and issues a signed HS256 token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, domuser.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domuser.User{}, domain.ErrInvalidCredentials
		}
		return "", domuser.User{}, fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", domuser.User{}, domain.ErrInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", domuser.User{}, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}
