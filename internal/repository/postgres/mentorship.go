package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/skillsync/backend/internal/domain"
)

// MentorshipRepository implements domain.MentorshipRepository
type MentorshipRepository struct {
	db *DB
}

// NewMentorshipRepository creates a new mentorship repository
func NewMentorshipRepository(db *DB) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// Create inserts a new mentorship pairing
func (r *MentorshipRepository) Create(ctx context.Context, m *domain.Mentorship) error {
	query := `
		INSERT INTO mentorships (id, mentor_name, mentee_name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Pool.Exec(ctx, query, m.ID, m.MentorName, m.MenteeName, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create mentorship: %w", err)
	}

	return nil
}

// GetByID retrieves a mentorship. Returns (nil, nil) when absent.
func (r *MentorshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mentorship, error) {
	query := `SELECT id, mentor_name, mentee_name, created_at FROM mentorships WHERE id = $1`

	var m domain.Mentorship
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.MentorName, &m.MenteeName, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mentorship: %w", err)
	}

	return &m, nil
}

// GetByPair retrieves an existing mentorship for the exact mentor/mentee pair.
// Returns (nil, nil) when no such pairing exists.
func (r *MentorshipRepository) GetByPair(ctx context.Context, mentorName, menteeName string) (*domain.Mentorship, error) {
	query := `SELECT id, mentor_name, mentee_name, created_at FROM mentorships WHERE mentor_name = $1 AND mentee_name = $2`

	var m domain.Mentorship
	err := r.db.Pool.QueryRow(ctx, query, mentorName, menteeName).Scan(&m.ID, &m.MentorName, &m.MenteeName, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mentorship: %w", err)
	}

	return &m, nil
}

// List retrieves all mentorships
func (r *MentorshipRepository) List(ctx context.Context) ([]domain.Mentorship, error) {
	query := `SELECT id, mentor_name, mentee_name, created_at FROM mentorships ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentorships: %w", err)
	}
	defer rows.Close()

	var mentorships []domain.Mentorship
	for rows.Next() {
		var m domain.Mentorship
		if err := rows.Scan(&m.ID, &m.MentorName, &m.MenteeName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mentorship: %w", err)
		}
		mentorships = append(mentorships, m)
	}

	return mentorships, rows.Err()
}

// Delete removes a mentorship
func (r *MentorshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM mentorships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mentorship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
