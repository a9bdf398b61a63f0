package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/domain"
)

// OpportunityService manages opportunity postings
type OpportunityService struct {
	oppRepo  domain.OpportunityRepository
	userRepo domain.UserRepository
}

// NewOpportunityService creates a new opportunity service
func NewOpportunityService(oppRepo domain.OpportunityRepository, userRepo domain.UserRepository) *OpportunityService {
	return &OpportunityService{oppRepo: oppRepo, userRepo: userRepo}
}

// Create publishes a new posting. The poster must be an existing user.
func (s *OpportunityService) Create(ctx context.Context, input domain.OpportunityCreate) (*domain.Opportunity, error) {
	poster, err := s.userRepo.GetByUsername(ctx, input.PostedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to get poster: %w", err)
	}
	if poster == nil {
		return nil, errors.New("posting user does not exist")
	}

	opp := &domain.Opportunity{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		PostedBy:    input.PostedBy,
		Type:        input.Type,
		CreatedAt:   time.Now(),
	}

	if err := s.oppRepo.Create(ctx, opp); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	return opp, nil
}

// Get returns a single posting by id
func (s *OpportunityService) Get(ctx context.Context, id uuid.UUID) (*domain.Opportunity, error) {
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	if opp == nil {
		return nil, domain.ErrNotFound
	}
	return opp, nil
}

// List returns all postings
func (s *OpportunityService) List(ctx context.Context) ([]domain.Opportunity, error) {
	opps, err := s.oppRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	return opps, nil
}

// Update applies a partial update to a posting
func (s *OpportunityService) Update(ctx context.Context, id uuid.UUID, update *domain.OpportunityUpdate) (*domain.Opportunity, error) {
	opp, err := s.oppRepo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}
	if opp == nil {
		return nil, domain.ErrNotFound
	}
	return opp, nil
}

// Delete removes a posting
func (s *OpportunityService) Delete(ctx context.Context, id uuid.UUID) error {
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get opportunity: %w", err)
	}
	if opp == nil {
		return domain.ErrNotFound
	}
	if err := s.oppRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	return nil
}
