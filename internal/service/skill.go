package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/domain"
)

// SkillService manages the skill catalog
type SkillService struct {
	skillRepo domain.SkillRepository
}

// NewSkillService creates a new skill service
func NewSkillService(skillRepo domain.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// Create adds a skill to the catalog. Skill names are unique.
func (s *SkillService) Create(ctx context.Context, input domain.SkillCreate) (*domain.Skill, error) {
	existing, err := s.skillRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check skill: %w", err)
	}
	if existing != nil {
		return nil, errors.New("skill already exists")
	}

	skill := &domain.Skill{
		ID:          uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

// Get returns a single skill by name
func (s *SkillService) Get(ctx context.Context, name string) (*domain.Skill, error) {
	skill, err := s.skillRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return nil, domain.ErrNotFound
	}
	return skill, nil
}

// List returns the full catalog
func (s *SkillService) List(ctx context.Context) ([]domain.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// Update applies a partial update to a skill
func (s *SkillService) Update(ctx context.Context, name string, update *domain.SkillUpdate) (*domain.Skill, error) {
	skill, err := s.skillRepo.Update(ctx, name, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	if skill == nil {
		return nil, domain.ErrNotFound
	}
	return skill, nil
}

// Delete removes a skill from the catalog
func (s *SkillService) Delete(ctx context.Context, name string) error {
	skill, err := s.skillRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return domain.ErrNotFound
	}
	if err := s.skillRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}
