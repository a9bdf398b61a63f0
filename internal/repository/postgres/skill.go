package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/skillsync/backend/internal/domain"
)

// SkillRepository implements domain.SkillRepository
type SkillRepository struct {
	db *DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a new skill
func (r *SkillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO skills (id, name, category, skill_description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		skill.ID,
		skill.Name,
		skill.Category,
		skill.Description,
		skill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

// GetByName retrieves a skill by name. Returns (nil, nil) when absent.
func (r *SkillRepository) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	query := `SELECT id, name, category, skill_description, created_at FROM skills WHERE name = $1`

	var skill domain.Skill
	err := r.db.Pool.QueryRow(ctx, query, name).Scan(
		&skill.ID,
		&skill.Name,
		&skill.Category,
		&skill.Description,
		&skill.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	return &skill, nil
}

// List retrieves the full skill catalog
func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name, category, skill_description, created_at FROM skills ORDER BY name`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// ListNames retrieves every skill name, ordered, forming the vector universe
// used by the matcher.
func (r *SkillRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT name FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan skill name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Update applies a partial skill update and returns the updated row
func (r *SkillRepository) Update(ctx context.Context, name string, update *domain.SkillUpdate) (*domain.Skill, error) {
	query := `
		UPDATE skills
		SET category          = COALESCE($2, category),
		    skill_description = COALESCE($3, skill_description)
		WHERE name = $1
		RETURNING id, name, category, skill_description, created_at
	`

	var skill domain.Skill
	err := r.db.Pool.QueryRow(ctx, query, name, update.Category, update.Description).Scan(
		&skill.ID,
		&skill.Name,
		&skill.Category,
		&skill.Description,
		&skill.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return &skill, nil
}

// Delete removes a skill by name
func (r *SkillRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM skills WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSkills(rows pgx.Rows) ([]domain.Skill, error) {
	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(
			&skill.ID,
			&skill.Name,
			&skill.Category,
			&skill.Description,
			&skill.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}
