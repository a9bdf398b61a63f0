package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/domain"
)

var (
	// ErrNotAMentor is returned when the named mentor does not hold the mentor role.
	ErrNotAMentor = errors.New("mentor_name must refer to a user with the mentor role")
	// ErrNotAMentee is returned when the named mentee does not hold the mentee role.
	ErrNotAMentee = errors.New("mentee_name must refer to a user with the mentee role")
	// ErrSelfMentorship is returned when a user is paired with themselves.
	ErrSelfMentorship = errors.New("a user cannot mentor themselves")
)

// MentorshipService pairs mentors with mentees
type MentorshipService struct {
	mentorshipRepo domain.MentorshipRepository
	userRepo       domain.UserRepository
}

// NewMentorshipService creates a new mentorship service
func NewMentorshipService(mentorshipRepo domain.MentorshipRepository, userRepo domain.UserRepository) *MentorshipService {
	return &MentorshipService{mentorshipRepo: mentorshipRepo, userRepo: userRepo}
}

// Create pairs a mentor with a mentee. Both users must exist and hold the
// right roles. Creating an already existing pair returns the existing record.
func (s *MentorshipService) Create(ctx context.Context, input domain.MentorshipCreate) (*domain.Mentorship, error) {
	if input.MentorName == input.MenteeName {
		return nil, ErrSelfMentorship
	}

	mentor, err := s.userRepo.GetByUsername(ctx, input.MentorName)
	if err != nil {
		return nil, fmt.Errorf("failed to get mentor: %w", err)
	}
	if mentor == nil || mentor.Role != domain.RoleMentor {
		return nil, ErrNotAMentor
	}

	mentee, err := s.userRepo.GetByUsername(ctx, input.MenteeName)
	if err != nil {
		return nil, fmt.Errorf("failed to get mentee: %w", err)
	}
	if mentee == nil || mentee.Role != domain.RoleMentee {
		return nil, ErrNotAMentee
	}

	existing, err := s.mentorshipRepo.GetByPair(ctx, input.MentorName, input.MenteeName)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing mentorship: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	m := &domain.Mentorship{
		ID:         uuid.New(),
		MentorName: input.MentorName,
		MenteeName: input.MenteeName,
		CreatedAt:  time.Now(),
	}

	if err := s.mentorshipRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create mentorship: %w", err)
	}

	return m, nil
}

// Get returns a single mentorship by id
func (s *MentorshipService) Get(ctx context.Context, id uuid.UUID) (*domain.Mentorship, error) {
	m, err := s.mentorshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get mentorship: %w", err)
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// List returns all mentorships
func (s *MentorshipService) List(ctx context.Context) ([]domain.Mentorship, error) {
	list, err := s.mentorshipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentorships: %w", err)
	}
	return list, nil
}

// Delete ends a mentorship
func (s *MentorshipService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.mentorshipRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get mentorship: %w", err)
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if err := s.mentorshipRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mentorship: %w", err)
	}
	return nil
}
