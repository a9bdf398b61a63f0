package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two sides of a mentorship
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// Opposite returns the role this role gets matched against.
func (r Role) Opposite() Role {
	if r == RoleMentor {
		return RoleMentee
	}
	return RoleMentor
}

// User represents a platform user
type User struct {
	ID              uuid.UUID `json:"user_id"`
	Username        string    `json:"username"`
	Name            string    `json:"name"`
	PasswordHash    string    `json:"-"`
	Role            Role      `json:"role"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	ProfileSummary  string    `json:"profile_summary,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserCreate represents user registration data
type UserCreate struct {
	Username        string `json:"username" validate:"required,min=3,max=64"`
	Name            string `json:"name" validate:"required,max=128"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	Role            Role   `json:"role" validate:"required,oneof=mentor mentee"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,max=32"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,max=64"`
	ProfileSummary  string `json:"profile_summary" validate:"omitempty,max=2048"`
}

// UserUpdate carries partial profile updates; nil fields are left untouched.
type UserUpdate struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,max=128"`
	PhoneNumber     *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	ExperienceLevel *string `json:"experience_level,omitempty" validate:"omitempty,max=64"`
	ProfileSummary  *string `json:"profile_summary,omitempty" validate:"omitempty,max=2048"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenPair represents a JWT token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Update(ctx context.Context, username string, update *UserUpdate) (*User, error)
	Delete(ctx context.Context, username string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}
