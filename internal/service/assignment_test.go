package service

import (
	"context"
	"testing"

	"github.com/skillsync/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAssignToUserSkipsExisting(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	skillRepo := new(mockSkillRepo)
	userSkills := new(mockUserSkillRepo)
	cache := new(mockMatchCache)
	svc := NewAssignmentService(userRepo, skillRepo, nil, userSkills, nil, cache)

	user := menteeUser("alice")
	goSkill := skillSet("go")[0]
	sqlSkill := skillSet("sql")[0]

	userRepo.On("GetByUsername", ctx, "alice").Return(user, nil)
	skillRepo.On("GetByName", ctx, "go").Return(&goSkill, nil)
	skillRepo.On("GetByName", ctx, "sql").Return(&sqlSkill, nil)
	userSkills.On("Assign", ctx, user.ID, goSkill.ID).Return(true, nil)
	userSkills.On("Assign", ctx, user.ID, sqlSkill.ID).Return(false, nil)
	cache.On("Invalidate", ctx, "alice").Return(nil)

	result, err := svc.AssignToUser(ctx, "alice", []string{"go", "sql"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"go"}, result.Added)
	assert.Equal(t, []string{"sql"}, result.Skipped)
	cache.AssertCalled(t, "Invalidate", ctx, "alice")
}

func TestAssignToUserUnknownSkill(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	skillRepo := new(mockSkillRepo)
	userSkills := new(mockUserSkillRepo)
	svc := NewAssignmentService(userRepo, skillRepo, nil, userSkills, nil, nil)

	userRepo.On("GetByUsername", ctx, "alice").Return(menteeUser("alice"), nil)
	skillRepo.On("GetByName", ctx, "underwater basket weaving").Return(nil, nil)

	_, err := svc.AssignToUser(ctx, "alice", []string{"underwater basket weaving"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	userSkills.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveFromUserInvalidatesCache(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	skillRepo := new(mockSkillRepo)
	userSkills := new(mockUserSkillRepo)
	cache := new(mockMatchCache)
	svc := NewAssignmentService(userRepo, skillRepo, nil, userSkills, nil, cache)

	user := menteeUser("alice")
	goSkill := skillSet("go")[0]

	userRepo.On("GetByUsername", ctx, "alice").Return(user, nil)
	skillRepo.On("GetByName", ctx, "go").Return(&goSkill, nil)
	userSkills.On("Remove", ctx, user.ID, goSkill.ID).Return(nil)
	cache.On("Invalidate", ctx, "alice").Return(nil)

	err := svc.RemoveFromUser(ctx, "alice", "go")

	assert.NoError(t, err)
	cache.AssertCalled(t, "Invalidate", ctx, "alice")
}

func TestAssignToUserUnknownUser(t *testing.T) {
	ctx := context.Background()

	userRepo := new(mockUserRepo)
	svc := NewAssignmentService(userRepo, new(mockSkillRepo), nil, new(mockUserSkillRepo), nil, nil)

	userRepo.On("GetByUsername", ctx, "ghost").Return(nil, nil)

	_, err := svc.AssignToUser(ctx, "ghost", []string{"go"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
