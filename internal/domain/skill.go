package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Skill represents a teachable/learnable skill in the catalog
type Skill struct {
	ID          uuid.UUID `json:"skill_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"skill_description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SkillCreate represents a new catalog entry
type SkillCreate struct {
	Name        string `json:"name" validate:"required,max=128"`
	Category    string `json:"category" validate:"omitempty,max=64"`
	Description string `json:"skill_description" validate:"omitempty,max=1024"`
}

// SkillUpdate carries partial skill updates
type SkillUpdate struct {
	Category    *string `json:"category,omitempty" validate:"omitempty,max=64"`
	Description *string `json:"skill_description,omitempty" validate:"omitempty,max=1024"`
}

// SkillRepository defines the interface for the skill catalog
type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetByName(ctx context.Context, name string) (*Skill, error)
	List(ctx context.Context) ([]Skill, error)
	ListNames(ctx context.Context) ([]string, error)
	Update(ctx context.Context, name string, update *SkillUpdate) (*Skill, error)
	Delete(ctx context.Context, name string) error
}

// UserSkillRepository manages the user <-> skill join table
type UserSkillRepository interface {
	// Assign links a skill to a user. Returns false when the mapping
	// already existed and nothing was inserted.
	Assign(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	Remove(ctx context.Context, userID, skillID uuid.UUID) error
}

// OpportunitySkillRepository manages the opportunity <-> skill join table
type OpportunitySkillRepository interface {
	Assign(ctx context.Context, opportunityID, skillID uuid.UUID) (bool, error)
	ListForOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]Skill, error)
	Remove(ctx context.Context, opportunityID, skillID uuid.UUID) error
}
