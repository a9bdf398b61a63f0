package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/skillsync/backend/internal/domain"
)

// AssignmentService links catalog skills to users and opportunities
type AssignmentService struct {
	userRepo   domain.UserRepository
	skillRepo  domain.SkillRepository
	oppRepo    domain.OpportunityRepository
	userSkills domain.UserSkillRepository
	oppSkills  domain.OpportunitySkillRepository
	matchCache MatchCache
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	userRepo domain.UserRepository,
	skillRepo domain.SkillRepository,
	oppRepo domain.OpportunityRepository,
	userSkills domain.UserSkillRepository,
	oppSkills domain.OpportunitySkillRepository,
	matchCache MatchCache,
) *AssignmentService {
	return &AssignmentService{
		userRepo:   userRepo,
		skillRepo:  skillRepo,
		oppRepo:    oppRepo,
		userSkills: userSkills,
		oppSkills:  oppSkills,
		matchCache: matchCache,
	}
}

// AssignmentResult reports which skill names were newly linked and which
// were already present.
type AssignmentResult struct {
	Added   []string `json:"added"`
	Skipped []string `json:"skipped"`
}

// AssignToUser links each named skill to the user, skipping mappings that
// already exist. Unknown skill names fail the whole call.
func (s *AssignmentService) AssignToUser(ctx context.Context, username string, skillNames []string) (*AssignmentResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	result := &AssignmentResult{Added: []string{}, Skipped: []string{}}
	for _, name := range skillNames {
		skill, err := s.skillRepo.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get skill: %w", err)
		}
		if skill == nil {
			return nil, fmt.Errorf("skill %q does not exist", name)
		}

		added, err := s.userSkills.Assign(ctx, user.ID, skill.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to assign skill: %w", err)
		}
		if added {
			result.Added = append(result.Added, name)
		} else {
			result.Skipped = append(result.Skipped, name)
		}
	}

	s.invalidateMatches(ctx, username)
	return result, nil
}

// ListForUser returns the skills linked to a user
func (s *AssignmentService) ListForUser(ctx context.Context, username string) ([]domain.Skill, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	skills, err := s.userSkills.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user skills: %w", err)
	}
	return skills, nil
}

// RemoveFromUser unlinks one skill from a user
func (s *AssignmentService) RemoveFromUser(ctx context.Context, username, skillName string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrNotFound
	}

	skill, err := s.skillRepo.GetByName(ctx, skillName)
	if err != nil {
		return fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return domain.ErrNotFound
	}

	if err := s.userSkills.Remove(ctx, user.ID, skill.ID); err != nil {
		return fmt.Errorf("failed to remove skill: %w", err)
	}

	s.invalidateMatches(ctx, username)
	return nil
}

// AssignToOpportunity links each named skill to a posting, skipping mappings
// that already exist.
func (s *AssignmentService) AssignToOpportunity(ctx context.Context, oppID uuid.UUID, skillNames []string) (*AssignmentResult, error) {
	opp, err := s.oppRepo.GetByID(ctx, oppID)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	if opp == nil {
		return nil, domain.ErrNotFound
	}

	result := &AssignmentResult{Added: []string{}, Skipped: []string{}}
	for _, name := range skillNames {
		skill, err := s.skillRepo.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get skill: %w", err)
		}
		if skill == nil {
			return nil, fmt.Errorf("skill %q does not exist", name)
		}

		added, err := s.oppSkills.Assign(ctx, opp.ID, skill.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to assign skill: %w", err)
		}
		if added {
			result.Added = append(result.Added, name)
		} else {
			result.Skipped = append(result.Skipped, name)
		}
	}

	return result, nil
}

// ListForOpportunity returns the skills linked to a posting
func (s *AssignmentService) ListForOpportunity(ctx context.Context, oppID uuid.UUID) ([]domain.Skill, error) {
	opp, err := s.oppRepo.GetByID(ctx, oppID)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	if opp == nil {
		return nil, domain.ErrNotFound
	}

	skills, err := s.oppSkills.ListForOpportunity(ctx, opp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunity skills: %w", err)
	}
	return skills, nil
}

// RemoveFromOpportunity unlinks one skill from a posting
func (s *AssignmentService) RemoveFromOpportunity(ctx context.Context, oppID uuid.UUID, skillName string) error {
	opp, err := s.oppRepo.GetByID(ctx, oppID)
	if err != nil {
		return fmt.Errorf("failed to get opportunity: %w", err)
	}
	if opp == nil {
		return domain.ErrNotFound
	}

	skill, err := s.skillRepo.GetByName(ctx, skillName)
	if err != nil {
		return fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return domain.ErrNotFound
	}

	if err := s.oppSkills.Remove(ctx, opp.ID, skill.ID); err != nil {
		return fmt.Errorf("failed to remove skill: %w", err)
	}
	return nil
}

// Other users' cached results age out with the TTL; only the edited user's
// entry is evicted eagerly.
func (s *AssignmentService) invalidateMatches(ctx context.Context, username string) {
	if s.matchCache == nil {
		return
	}
	if err := s.matchCache.Invalidate(ctx, username); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("failed to invalidate match cache")
	}
}
