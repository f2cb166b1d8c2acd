package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles understood by the authorization layer.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account that can own listings.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(10);not null"`
}

// TableName sets the users table name.
func (User) TableName() string { return "users" }
