package repository

import (
	"context"

	"caps-connect/internal/database"
	"caps-connect/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillRepository interface {
	ListAll(ctx context.Context) ([]skill.Skill, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, user_id, category, skill_name, willingness_level, is_hobby, created_at`

func (r *PostgresSkillRepository) ListAll(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *PostgresSkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO skills (id, user_id, category, skill_name, willingness_level, is_hobby)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		s.ID, s.UserID, s.Category, s.SkillName, string(s.WillingnessLevel), s.IsHobby,
	)
	if err := row.Scan(&s.CreatedAt); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanSkills(rows database.Rows) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		var willingness string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Category, &s.SkillName, &willingness, &s.IsHobby, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.WillingnessLevel = skill.WillingnessLevel(willingness)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
