package repository

import (
	"context"

	"caps-connect/internal/database"
	"caps-connect/internal/recommender"
)

type StatsRepository interface {
	Collect(ctx context.Context) (recommender.DataStats, error)
}

// PostgresStatsRepository aggregates the dataset statistics the config
// recommender analyzes.
type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) Collect(ctx context.Context) (recommender.DataStats, error) {
	stats := recommender.DataStats{
		SkillsByWillingness:   map[string]int{},
		ConnectionsByStrength: map[string]int{},
		SkillsByCategory:      map[string]int{},
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &stats.TotalUsers},
		{`SELECT COUNT(*) FROM skills`, &stats.TotalSkills},
		{`SELECT COUNT(*) FROM connections`, &stats.TotalConnections},
		{`SELECT COUNT(*) FROM needs`, &stats.TotalNeeds},
	}
	for _, c := range counts {
		if err := r.db.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return recommender.DataStats{}, err
		}
	}

	groups := []struct {
		query string
		dest  map[string]int
	}{
		{`SELECT willingness_level, COUNT(*) FROM skills GROUP BY willingness_level`, stats.SkillsByWillingness},
		{`SELECT relationship_strength, COUNT(*) FROM connections GROUP BY relationship_strength`, stats.ConnectionsByStrength},
		{`SELECT category, COUNT(*) FROM skills GROUP BY category`, stats.SkillsByCategory},
	}
	for _, g := range groups {
		if err := collectGrouped(ctx, r.db, g.query, g.dest); err != nil {
			return recommender.DataStats{}, err
		}
	}

	return stats, nil
}

func collectGrouped(ctx context.Context, db database.DB, query string, dest map[string]int) error {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		dest[key] = n
	}
	return rows.Err()
}
