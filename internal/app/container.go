package app

import (
	"context"
	"log"
	"time"

	"caps-connect/internal/config"
	"caps-connect/internal/database"
	"caps-connect/internal/database/migration"
	dbpostgres "caps-connect/internal/database/postgres"
	"caps-connect/internal/delivery/http/handler"
	"caps-connect/internal/delivery/http/middleware"
	"caps-connect/internal/delivery/http/routes"
	"caps-connect/internal/infrastructure/cache"
	"caps-connect/internal/pkg/jwt"
	"caps-connect/internal/recommender"
	"caps-connect/internal/repository"
	"caps-connect/internal/usecase"
	"caps-connect/internal/ws"
)

// Container wires the whole dependency graph: storage, cache, usecases,
// handlers, and the websocket hub.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Routes    *routes.Registry
	WSHandler *ws.Handler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{FS: migrationsFS, Dir: "migrations"}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	connectionRepo := repository.NewPostgresConnectionRepository(db)
	needRepo := repository.NewPostgresNeedRepository(db)
	needResponseRepo := repository.NewPostgresNeedResponseRepository(db)
	configRepo := repository.NewPostgresScoringConfigRepository(db)
	statsRepo := repository.NewPostgresStatsRepository(db)

	var advisor recommender.Recommender
	if cfg.Advisor.APIKey != "" {
		advisor = recommender.NewAdvisor(cfg.Advisor.APIKey, cfg.Advisor.Model)
	}

	configUC := usecase.NewScoringConfigUsecase(
		configRepo,
		statsRepo,
		advisor,
		redisCache,
		logger,
		hub.NotifyScoringConfigUpdated,
	)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(userRepo, skillRepo, connectionRepo)
	needUC := usecase.NewNeedUsecase(needRepo)
	needResponseUC := usecase.NewNeedResponseUsecase(needResponseRepo, needRepo, userRepo)
	matchUC := usecase.NewMatchingUsecase(needRepo, skillRepo, connectionRepo, userRepo, configUC)
	searchUC := usecase.NewSearchUsecase(skillRepo, connectionRepo, userRepo, configUC, redisCache)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	adminMw := middleware.NewAdminMiddleware(userRepo)

	registry := &routes.Registry{
		Health:        handler.NewHealthHandler(),
		Auth:          handler.NewAuthHandler(authUC),
		Users:         handler.NewUserHandler(profileUC, needResponseUC),
		Needs:         handler.NewNeedHandler(needUC, needResponseUC, adminMw),
		Match:         handler.NewMatchHandler(matchUC),
		Search:        handler.NewSearchHandler(searchUC),
		ScoringConfig: handler.NewScoringConfigHandler(configUC, adminMw),
		AuthMw:        authMw,
	}

	return &Container{
		Config:    cfg,
		DB:        db,
		Cache:     redisCache,
		Hub:       hub,
		Routes:    registry,
		WSHandler: ws.NewHandler(hub, jwtSvc, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
