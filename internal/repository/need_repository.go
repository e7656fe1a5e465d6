package repository

import (
	"context"
	"errors"

	"caps-connect/internal/database"
	"caps-connect/internal/domain/need"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NeedRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (need.Need, error)
	ListActive(ctx context.Context) ([]need.Need, error)
	Create(ctx context.Context, n need.Need) (need.Need, error)
	Update(ctx context.Context, n need.Need) (need.Need, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresNeedRepository struct {
	db database.DB
}

func NewPostgresNeedRepository(db database.DB) *PostgresNeedRepository {
	return &PostgresNeedRepository{db: db}
}

const needColumns = `id, title, description, category, created_by, is_active, created_at, updated_at`

func (r *PostgresNeedRepository) GetByID(ctx context.Context, id uuid.UUID) (need.Need, error) {
	row := r.db.QueryRow(ctx, `SELECT `+needColumns+` FROM needs WHERE id = $1`, id)
	n, err := scanNeed(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return need.Need{}, need.ErrNotFound
		}
		return need.Need{}, err
	}
	return n, nil
}

func (r *PostgresNeedRepository) ListActive(ctx context.Context) ([]need.Need, error) {
	rows, err := r.db.Query(ctx, `SELECT `+needColumns+` FROM needs WHERE is_active ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]need.Need, 0)
	for rows.Next() {
		n, err := scanNeed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNeedRepository) Create(ctx context.Context, n need.Need) (need.Need, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO needs (id, title, description, category, created_by, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		n.ID, n.Title, n.Description, n.Category, n.CreatedBy, n.IsActive,
	)
	if err := row.Scan(&n.CreatedAt, &n.UpdatedAt); err != nil {
		return need.Need{}, err
	}
	return n, nil
}

func (r *PostgresNeedRepository) Update(ctx context.Context, n need.Need) (need.Need, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE needs
		 SET title = $2, description = $3, category = $4, is_active = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING created_by, created_at, updated_at`,
		n.ID, n.Title, n.Description, n.Category, n.IsActive,
	)
	if err := row.Scan(&n.CreatedBy, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return need.Need{}, need.ErrNotFound
		}
		return need.Need{}, err
	}
	return n, nil
}

func (r *PostgresNeedRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM needs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type needRow interface {
	Scan(dest ...any) error
}

func scanNeed(row needRow) (need.Need, error) {
	var n need.Need
	err := row.Scan(&n.ID, &n.Title, &n.Description, &n.Category, &n.CreatedBy, &n.IsActive, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}
