package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/skillsync/backend/internal/domain"
)

// MatchCache caches computed match results per user
type MatchCache interface {
	Get(ctx context.Context, username string) ([]domain.MatchResult, error)
	Set(ctx context.Context, username string, results []domain.MatchResult) error
	Invalidate(ctx context.Context, username string) error
}

// MatchService scores mentors against mentees by skill overlap
type MatchService struct {
	userRepo   domain.UserRepository
	skillRepo  domain.SkillRepository
	userSkills domain.UserSkillRepository
	cache      MatchCache
}

// NewMatchService creates a new match service
func NewMatchService(
	userRepo domain.UserRepository,
	skillRepo domain.SkillRepository,
	userSkills domain.UserSkillRepository,
	cache MatchCache,
) *MatchService {
	return &MatchService{
		userRepo:   userRepo,
		skillRepo:  skillRepo,
		userSkills: userSkills,
		cache:      cache,
	}
}

// Match returns opposite-role users ranked by cosine similarity of their
// skill vectors. Counterparts with no skill overlap are omitted.
func (s *MatchService) Match(ctx context.Context, username string) ([]domain.MatchResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, username)
		if err != nil {
			log.Warn().Err(err).Str("username", username).Msg("match cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	catalog, err := s.skillRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill names: %w", err)
	}

	ownSkills, err := s.userSkills.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user skills: %w", err)
	}
	ownVector := buildSkillVector(catalog, skillNames(ownSkills))

	counterparts, err := s.userRepo.ListByRole(ctx, user.Role.Opposite())
	if err != nil {
		return nil, fmt.Errorf("failed to list counterparts: %w", err)
	}

	results := make([]domain.MatchResult, 0, len(counterparts))
	for _, other := range counterparts {
		theirSkills, err := s.userSkills.ListForUser(ctx, other.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list skills for %s: %w", other.Username, err)
		}

		names := skillNames(theirSkills)
		score := cosineSimilarity(ownVector, buildSkillVector(catalog, names))
		if score == 0 {
			continue
		}

		results = append(results, domain.MatchResult{
			Username: other.Username,
			Name:     other.Name,
			Role:     other.Role,
			Score:    score,
			Skills:   names,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, username, results); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("match cache write failed")
		}
	}

	return results, nil
}

func skillNames(skills []domain.Skill) []string {
	names := make([]string, len(skills))
	for i, sk := range skills {
		names[i] = sk.Name
	}
	return names
}

// buildSkillVector projects a skill set onto the catalog axis order as a
// binary vector.
func buildSkillVector(catalog []string, owned []string) []float64 {
	set := make(map[string]struct{}, len(owned))
	for _, name := range owned {
		set[name] = struct{}{}
	}

	vector := make([]float64, len(catalog))
	for i, name := range catalog {
		if _, ok := set[name]; ok {
			vector[i] = 1
		}
	}
	return vector
}

// cosineSimilarity returns 0 when either vector has zero magnitude.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
