package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillsync/backend/internal/domain"
)

// UserSkillRepository implements domain.UserSkillRepository
type UserSkillRepository struct {
	db *DB
}

// NewUserSkillRepository creates a new user-skill repository
func NewUserSkillRepository(db *DB) *UserSkillRepository {
	return &UserSkillRepository{db: db}
}

// Assign links a skill to a user, skipping duplicates
func (r *UserSkillRepository) Assign(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO user_skills (user_id, skill_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, skill_id) DO NOTHING
	`

	tag, err := r.db.Pool.Exec(ctx, query, userID, skillID)
	if err != nil {
		return false, fmt.Errorf("failed to assign user skill: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListForUser retrieves all skills assigned to a user
func (r *UserSkillRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	query := `
		SELECT s.id, s.name, s.category, s.skill_description, s.created_at
		FROM skills s
		INNER JOIN user_skills us ON s.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// Remove deletes one user-skill mapping
func (r *UserSkillRepository) Remove(ctx context.Context, userID, skillID uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`, userID, skillID)
	if err != nil {
		return fmt.Errorf("failed to remove user skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// OpportunitySkillRepository implements domain.OpportunitySkillRepository
type OpportunitySkillRepository struct {
	db *DB
}

// NewOpportunitySkillRepository creates a new opportunity-skill repository
func NewOpportunitySkillRepository(db *DB) *OpportunitySkillRepository {
	return &OpportunitySkillRepository{db: db}
}

// Assign links a skill to an opportunity, skipping duplicates
func (r *OpportunitySkillRepository) Assign(ctx context.Context, opportunityID, skillID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO opportunity_skills (opportunity_id, skill_id)
		VALUES ($1, $2)
		ON CONFLICT (opportunity_id, skill_id) DO NOTHING
	`

	tag, err := r.db.Pool.Exec(ctx, query, opportunityID, skillID)
	if err != nil {
		return false, fmt.Errorf("failed to assign opportunity skill: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListForOpportunity retrieves all skills required by an opportunity
func (r *OpportunitySkillRepository) ListForOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]domain.Skill, error) {
	query := `
		SELECT s.id, s.name, s.category, s.skill_description, s.created_at
		FROM skills s
		INNER JOIN opportunity_skills os ON s.id = os.skill_id
		WHERE os.opportunity_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Pool.Query(ctx, query, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunity skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// Remove deletes one opportunity-skill mapping
func (r *OpportunitySkillRepository) Remove(ctx context.Context, opportunityID, skillID uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM opportunity_skills WHERE opportunity_id = $1 AND skill_id = $2`, opportunityID, skillID)
	if err != nil {
		return fmt.Errorf("failed to remove opportunity skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
