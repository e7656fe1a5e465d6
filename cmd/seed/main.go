package main

import (
	"context"
	"log"
	"time"

	"caps-connect/internal/app"
	"caps-connect/internal/config"
	"caps-connect/internal/database/migration"
	"caps-connect/internal/database/postgres"
	"caps-connect/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	runner := migration.Runner{FS: app.MigrationsFS(), Dir: "migrations"}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	s := seeder.Runner{Seeders: seeder.Defaults()}
	if err := s.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("seeding complete")
}
