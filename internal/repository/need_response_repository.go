package repository

import (
	"context"
	"errors"

	"caps-connect/internal/database"
	"caps-connect/internal/domain/need"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NeedResponseRepository interface {
	Create(ctx context.Context, r need.Response) (need.Response, error)
	GetByID(ctx context.Context, id uuid.UUID) (need.Response, error)
	ListByNeed(ctx context.Context, needID uuid.UUID) ([]need.Response, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]need.Response, error)
	HasResponded(ctx context.Context, needID, userID uuid.UUID) (bool, error)
	// Review updates status and stamps reviewed_at; nil adminNotes keeps the
	// stored notes.
	Review(ctx context.Context, id uuid.UUID, status need.ResponseStatus, adminNotes *string) (need.Response, error)
}

type PostgresNeedResponseRepository struct {
	db database.DB
}

func NewPostgresNeedResponseRepository(db database.DB) *PostgresNeedResponseRepository {
	return &PostgresNeedResponseRepository{db: db}
}

const needResponseColumns = `id, need_id, user_id, message, status, admin_notes, created_at, reviewed_at`

func (r *PostgresNeedResponseRepository) Create(ctx context.Context, resp need.Response) (need.Response, error) {
	if resp.ID == uuid.Nil {
		resp.ID = uuid.New()
	}
	if resp.Status == "" {
		resp.Status = need.ResponsePending
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO need_responses (id, need_id, user_id, message, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		resp.ID, resp.NeedID, resp.UserID, resp.Message, string(resp.Status),
	)
	if err := row.Scan(&resp.CreatedAt); err != nil {
		return need.Response{}, err
	}
	return resp, nil
}

func (r *PostgresNeedResponseRepository) GetByID(ctx context.Context, id uuid.UUID) (need.Response, error) {
	row := r.db.QueryRow(ctx, `SELECT `+needResponseColumns+` FROM need_responses WHERE id = $1`, id)
	resp, err := scanNeedResponse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return need.Response{}, need.ErrResponseNotFound
		}
		return need.Response{}, err
	}
	return resp, nil
}

func (r *PostgresNeedResponseRepository) ListByNeed(ctx context.Context, needID uuid.UUID) ([]need.Response, error) {
	return r.list(ctx, `SELECT `+needResponseColumns+` FROM need_responses WHERE need_id = $1 ORDER BY created_at DESC`, needID)
}

func (r *PostgresNeedResponseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]need.Response, error) {
	return r.list(ctx, `SELECT `+needResponseColumns+` FROM need_responses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresNeedResponseRepository) HasResponded(ctx context.Context, needID, userID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM need_responses WHERE need_id = $1 AND user_id = $2)`,
		needID, userID,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresNeedResponseRepository) Review(ctx context.Context, id uuid.UUID, status need.ResponseStatus, adminNotes *string) (need.Response, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE need_responses
		 SET status = $2, admin_notes = COALESCE($3, admin_notes), reviewed_at = now()
		 WHERE id = $1
		 RETURNING `+needResponseColumns,
		id, string(status), adminNotes,
	)
	resp, err := scanNeedResponse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return need.Response{}, need.ErrResponseNotFound
		}
		return need.Response{}, err
	}
	return resp, nil
}

func (r *PostgresNeedResponseRepository) list(ctx context.Context, query string, arg any) ([]need.Response, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]need.Response, 0)
	for rows.Next() {
		resp, err := scanNeedResponse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanNeedResponse(row needRow) (need.Response, error) {
	var (
		resp   need.Response
		status string
	)
	err := row.Scan(&resp.ID, &resp.NeedID, &resp.UserID, &resp.Message, &status, &resp.AdminNotes, &resp.CreatedAt, &resp.ReviewedAt)
	if err != nil {
		return need.Response{}, err
	}
	resp.Status = need.ResponseStatus(status)
	return resp, nil
}
