package seeder

import (
	"context"
	"fmt"

	"caps-connect/internal/database"
)

type DemoNeedsSeeder struct{}

func (DemoNeedsSeeder) Name() string { return "demo_needs" }

func (DemoNeedsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "needs", "id", "title", "description", "category", "created_by", "is_active"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title       string
		Description string
		Category    string
	}{
		{
			Title:       "Volunteer basketball coach for spring league",
			Description: "Weekly practice plus Saturday games, March through May.",
			Category:    "Sports & Coaching",
		},
		{
			Title:       "Lease review for the community center",
			Description: "One-time review of a three-year facility lease.",
			Category:    "Legal Services",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO needs (id, title, description, category, created_by, is_active)
			 SELECT gen_random_uuid(), $1, $2, $3, u.id, TRUE
			 FROM (SELECT id FROM users WHERE is_admin LIMIT 1) u
			 WHERE NOT EXISTS (SELECT 1 FROM needs WHERE title = $1)`,
			it.Title, it.Description, it.Category,
		)
		if err != nil {
			return fmt.Errorf("need %q: %w", it.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
