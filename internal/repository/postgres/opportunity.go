package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/skillsync/backend/internal/domain"
)

// OpportunityRepository implements domain.OpportunityRepository
type OpportunityRepository struct {
	db *DB
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(db *DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

// Create inserts a new opportunity
func (r *OpportunityRepository) Create(ctx context.Context, opp *domain.Opportunity) error {
	query := `
		INSERT INTO opportunities (id, title, description, posted_by, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		opp.ID,
		opp.Title,
		opp.Description,
		opp.PostedBy,
		opp.Type,
		opp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create opportunity: %w", err)
	}

	return nil
}

// GetByID retrieves an opportunity. Returns (nil, nil) when absent.
func (r *OpportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Opportunity, error) {
	query := `SELECT id, title, description, posted_by, type, created_at FROM opportunities WHERE id = $1`

	var opp domain.Opportunity
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&opp.ID,
		&opp.Title,
		&opp.Description,
		&opp.PostedBy,
		&opp.Type,
		&opp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}

	return &opp, nil
}

// List retrieves all opportunities, newest first
func (r *OpportunityRepository) List(ctx context.Context) ([]domain.Opportunity, error) {
	query := `SELECT id, title, description, posted_by, type, created_at FROM opportunities ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	var opps []domain.Opportunity
	for rows.Next() {
		var opp domain.Opportunity
		if err := rows.Scan(
			&opp.ID,
			&opp.Title,
			&opp.Description,
			&opp.PostedBy,
			&opp.Type,
			&opp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opps = append(opps, opp)
	}

	return opps, rows.Err()
}

// Update applies a partial update and returns the updated row
func (r *OpportunityRepository) Update(ctx context.Context, id uuid.UUID, update *domain.OpportunityUpdate) (*domain.Opportunity, error) {
	query := `
		UPDATE opportunities
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    type        = COALESCE($4, type)
		WHERE id = $1
		RETURNING id, title, description, posted_by, type, created_at
	`

	var opp domain.Opportunity
	err := r.db.Pool.QueryRow(ctx, query, id, update.Title, update.Description, update.Type).Scan(
		&opp.ID,
		&opp.Title,
		&opp.Description,
		&opp.PostedBy,
		&opp.Type,
		&opp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}

	return &opp, nil
}

// Delete removes an opportunity
func (r *OpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
