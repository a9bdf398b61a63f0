package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Opportunity is a posting (project, internship, mentorship slot) created by a user
type Opportunity struct {
	ID          uuid.UUID `json:"opp_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PostedBy    string    `json:"posted_by"`
	Type        string    `json:"type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// OpportunityCreate represents a new posting
type OpportunityCreate struct {
	Title       string `json:"title" validate:"required,max=256"`
	Description string `json:"description" validate:"omitempty,max=4096"`
	PostedBy    string `json:"posted_by" validate:"required"`
	Type        string `json:"type" validate:"omitempty,max=64"`
}

// OpportunityUpdate carries partial posting updates
type OpportunityUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=256"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4096"`
	Type        *string `json:"type,omitempty" validate:"omitempty,max=64"`
}

// OpportunityRepository defines the interface for opportunity storage
type OpportunityRepository interface {
	Create(ctx context.Context, opp *Opportunity) error
	GetByID(ctx context.Context, id uuid.UUID) (*Opportunity, error)
	List(ctx context.Context) ([]Opportunity, error)
	Update(ctx context.Context, id uuid.UUID, update *OpportunityUpdate) (*Opportunity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
