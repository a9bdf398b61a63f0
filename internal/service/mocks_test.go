package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if u := args.Get(0); u != nil {
		return u.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, username string, update *domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, username, update)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *mockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type mockSkillRepo struct {
	mock.Mock
}

func (m *mockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *mockSkillRepo) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	args := m.Called(ctx, name)
	if s := args.Get(0); s != nil {
		return s.(*domain.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSkillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]domain.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSkillRepo) ListNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSkillRepo) Update(ctx context.Context, name string, update *domain.SkillUpdate) (*domain.Skill, error) {
	args := m.Called(ctx, name, update)
	if s := args.Get(0); s != nil {
		return s.(*domain.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSkillRepo) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type mockUserSkillRepo struct {
	mock.Mock
}

func (m *mockUserSkillRepo) Assign(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, skillID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserSkillRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if s := args.Get(0); s != nil {
		return s.([]domain.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserSkillRepo) Remove(ctx context.Context, userID, skillID uuid.UUID) error {
	args := m.Called(ctx, userID, skillID)
	return args.Error(0)
}

type mockMentorshipRepo struct {
	mock.Mock
}

func (m *mockMentorshipRepo) Create(ctx context.Context, ms *domain.Mentorship) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *mockMentorshipRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mentorship, error) {
	args := m.Called(ctx, id)
	if ms := args.Get(0); ms != nil {
		return ms.(*domain.Mentorship), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMentorshipRepo) GetByPair(ctx context.Context, mentorName, menteeName string) (*domain.Mentorship, error) {
	args := m.Called(ctx, mentorName, menteeName)
	if ms := args.Get(0); ms != nil {
		return ms.(*domain.Mentorship), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMentorshipRepo) List(ctx context.Context) ([]domain.Mentorship, error) {
	args := m.Called(ctx)
	if ms := args.Get(0); ms != nil {
		return ms.([]domain.Mentorship), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMentorshipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMatchCache struct {
	mock.Mock
}

func (m *mockMatchCache) Get(ctx context.Context, username string) ([]domain.MatchResult, error) {
	args := m.Called(ctx, username)
	if r := args.Get(0); r != nil {
		return r.([]domain.MatchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMatchCache) Set(ctx context.Context, username string, results []domain.MatchResult) error {
	args := m.Called(ctx, username, results)
	return args.Error(0)
}

func (m *mockMatchCache) Invalidate(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
