package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func skillSet(names ...string) []domain.Skill {
	skills := make([]domain.Skill, len(names))
	for i, n := range names {
		skills[i] = domain.Skill{ID: uuid.New(), Name: n}
	}
	return skills
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 1, 0}, []float64{1, 1, 0}, 1},
		{"orthogonal", []float64{1, 0, 0}, []float64{0, 1, 0}, 0},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 1, 0}, 0},
		{"partial overlap", []float64{1, 1, 0, 0}, []float64{0, 1, 1, 0}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestBuildSkillVector(t *testing.T) {
	catalog := []string{"go", "sql", "react", "design"}

	vector := buildSkillVector(catalog, []string{"sql", "design", "unknown"})

	assert.Equal(t, []float64{0, 1, 0, 1}, vector)
}

func TestMatchRanksByOverlap(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	skillRepo := new(mockSkillRepo)
	userSkills := new(mockUserSkillRepo)
	svc := NewMatchService(userRepo, skillRepo, userSkills, nil)

	mentee := menteeUser("alice")
	strong := mentorUser("strong")
	weak := mentorUser("weak")
	none := mentorUser("unrelated")

	userRepo.On("GetByUsername", ctx, "alice").Return(mentee, nil)
	skillRepo.On("ListNames", ctx).Return([]string{"go", "sql", "react", "design"}, nil)
	userRepo.On("ListByRole", ctx, domain.RoleMentor).Return([]domain.User{*strong, *weak, *none}, nil)

	userSkills.On("ListForUser", ctx, mentee.ID).Return(skillSet("go", "sql"), nil)
	userSkills.On("ListForUser", ctx, strong.ID).Return(skillSet("go", "sql"), nil)
	userSkills.On("ListForUser", ctx, weak.ID).Return(skillSet("sql", "react"), nil)
	userSkills.On("ListForUser", ctx, none.ID).Return(skillSet("design"), nil)

	results, err := svc.Match(ctx, "alice")

	assert.NoError(t, err)
	assert.Len(t, results, 2, "zero-overlap counterparts are dropped")
	assert.Equal(t, "strong", results[0].Username)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.Equal(t, "weak", results[1].Username)
	assert.InDelta(t, 0.5, results[1].Score, 1e-9)
	assert.Equal(t, []string{"sql", "react"}, results[1].Skills)
}

func TestMatchUsesOppositeRole(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	skillRepo := new(mockSkillRepo)
	userSkills := new(mockUserSkillRepo)
	svc := NewMatchService(userRepo, skillRepo, userSkills, nil)

	mentor := mentorUser("alice")
	userRepo.On("GetByUsername", ctx, "alice").Return(mentor, nil)
	skillRepo.On("ListNames", ctx).Return([]string{"go"}, nil)
	userSkills.On("ListForUser", ctx, mentor.ID).Return(skillSet("go"), nil)
	userRepo.On("ListByRole", ctx, domain.RoleMentee).Return([]domain.User{}, nil)

	results, err := svc.Match(ctx, "alice")

	assert.NoError(t, err)
	assert.Empty(t, results)
	userRepo.AssertCalled(t, "ListByRole", ctx, domain.RoleMentee)
}

func TestMatchCacheHitSkipsScoring(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	cache := new(mockMatchCache)
	svc := NewMatchService(userRepo, new(mockSkillRepo), new(mockUserSkillRepo), cache)

	cached := []domain.MatchResult{{Username: "bob", Score: 0.9}}
	cache.On("Get", ctx, "alice").Return(cached, nil)

	results, err := svc.Match(ctx, "alice")

	assert.NoError(t, err)
	assert.Equal(t, cached, results)
	userRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestMatchCacheMissPopulatesCache(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	skillRepo := new(mockSkillRepo)
	userSkills := new(mockUserSkillRepo)
	cache := new(mockMatchCache)
	svc := NewMatchService(userRepo, skillRepo, userSkills, cache)

	mentee := menteeUser("alice")
	cache.On("Get", ctx, "alice").Return(nil, nil)
	userRepo.On("GetByUsername", ctx, "alice").Return(mentee, nil)
	skillRepo.On("ListNames", ctx).Return([]string{"go"}, nil)
	userSkills.On("ListForUser", ctx, mentee.ID).Return(skillSet("go"), nil)
	userRepo.On("ListByRole", ctx, domain.RoleMentor).Return([]domain.User{}, nil)
	cache.On("Set", ctx, "alice", mock.AnythingOfType("[]domain.MatchResult")).Return(nil)

	_, err := svc.Match(ctx, "alice")

	assert.NoError(t, err)
	cache.AssertCalled(t, "Set", ctx, "alice", mock.AnythingOfType("[]domain.MatchResult"))
}

func TestMatchUnknownUser(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	svc := NewMatchService(userRepo, new(mockSkillRepo), new(mockUserSkillRepo), nil)

	userRepo.On("GetByUsername", ctx, "ghost").Return(nil, nil)

	_, err := svc.Match(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
