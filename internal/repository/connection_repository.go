package repository

import (
	"context"

	"caps-connect/internal/database"
	"caps-connect/internal/domain/connection"

	"github.com/google/uuid"
)

type ConnectionRepository interface {
	ListAll(ctx context.Context) ([]connection.Connection, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]connection.Connection, error)
	Create(ctx context.Context, c connection.Connection) (connection.Connection, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type PostgresConnectionRepository struct {
	db database.DB
}

func NewPostgresConnectionRepository(db database.DB) *PostgresConnectionRepository {
	return &PostgresConnectionRepository{db: db}
}

const connectionColumns = `id, user_id, sector, organization_name, relationship_strength, contact_name, created_at`

func (r *PostgresConnectionRepository) ListAll(ctx context.Context) ([]connection.Connection, error) {
	rows, err := r.db.Query(ctx, `SELECT `+connectionColumns+` FROM connections`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanConnections(rows)
}

func (r *PostgresConnectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]connection.Connection, error) {
	rows, err := r.db.Query(ctx, `SELECT `+connectionColumns+` FROM connections WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanConnections(rows)
}

func (r *PostgresConnectionRepository) Create(ctx context.Context, c connection.Connection) (connection.Connection, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO connections (id, user_id, sector, organization_name, relationship_strength, contact_name)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		c.ID, c.UserID, c.Sector, c.OrganizationName, string(c.RelationshipStrength), c.ContactName,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return connection.Connection{}, err
	}
	return c, nil
}

func (r *PostgresConnectionRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM connections WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanConnections(rows database.Rows) ([]connection.Connection, error) {
	out := make([]connection.Connection, 0)
	for rows.Next() {
		var c connection.Connection
		var strength string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Sector, &c.OrganizationName, &strength, &c.ContactName, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.RelationshipStrength = connection.RelationshipStrength(strength)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
