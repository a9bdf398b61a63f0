package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mentorship pairs one mentor with one mentee
type Mentorship struct {
	ID         uuid.UUID `json:"mentorship_id"`
	MentorName string    `json:"mentor_name"`
	MenteeName string    `json:"mentee_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// MentorshipCreate represents a pairing request
type MentorshipCreate struct {
	MentorName string `json:"mentor_name" validate:"required"`
	MenteeName string `json:"mentee_name" validate:"required"`
}

// MentorshipRepository defines the interface for mentorship storage
type MentorshipRepository interface {
	Create(ctx context.Context, m *Mentorship) error
	GetByID(ctx context.Context, id uuid.UUID) (*Mentorship, error)
	GetByPair(ctx context.Context, mentorName, menteeName string) (*Mentorship, error)
	List(ctx context.Context) ([]Mentorship, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
