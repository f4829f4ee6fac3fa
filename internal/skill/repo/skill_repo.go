package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/elishalema/portfolio-service/internal/skill"
)

// SkillRepo provides data access for the skills table using sqlx.
type SkillRepo struct {
	db *sqlx.DB
}

func NewSkillRepo(db *sqlx.DB) *SkillRepo { return &SkillRepo{db: db} }

// EnsureTable creates the skills table if not exists (idempotent).
func (r *SkillRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS skills (
  id varchar(32) PRIMARY KEY,
  name text NOT NULL DEFAULT '',
  percentage int NOT NULL DEFAULT 0,
  category text NOT NULL DEFAULT '',
  icon text NOT NULL DEFAULT '',
  color text NOT NULL DEFAULT '',
  created_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_skills_created_at ON skills (created_at);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

const skillColumns = `id, name, percentage, category, icon, color, created_at`

// List returns all skills oldest first.
func (r *SkillRepo) List(ctx context.Context) ([]skill.Skill, error) {
	const q = `SELECT ` + skillColumns + ` FROM skills ORDER BY created_at ASC, id ASC`
	var rows []skill.Skill
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SkillRepo) GetByID(ctx context.Context, id string) (*skill.Skill, error) {
	const q = `SELECT ` + skillColumns + ` FROM skills WHERE id=$1`
	var row skill.Skill
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SkillRepo) Insert(ctx context.Context, s *skill.Skill) error {
	const q = `INSERT INTO skills (id, name, percentage, category, icon, color, created_at)
		VALUES (:id, :name, :percentage, :category, :icon, :color, :created_at)`
	_, err := r.db.NamedExecContext(ctx, q, s)
	return err
}

func (r *SkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	const q = `UPDATE skills SET name=:name, percentage=:percentage, category=:category,
		icon=:icon, color=:color WHERE id=:id`
	_, err := r.db.NamedExecContext(ctx, q, s)
	return err
}

func (r *SkillRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id=$1`, id)
	return err
}

// DeleteAll clears the collection; used by the demo-content seeder only.
func (r *SkillRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM skills`)
	return err
}
