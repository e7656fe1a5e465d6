package routes

import (
	"caps-connect/internal/delivery/http/handler"
	"caps-connect/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Needs         *handler.NeedHandler
	Match         *handler.MatchHandler
	Search        *handler.SearchHandler
	ScoringConfig *handler.ScoringConfigHandler

	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	r.Auth.RegisterRoutes(v1.Group("/auth"))

	protected := v1.Group("", r.AuthMw.Middleware())

	r.Match.RegisterRoutes(protected)
	r.Search.RegisterRoutes(protected)
	r.ScoringConfig.RegisterRoutes(protected)

	r.Users.RegisterRoutes(protected.Group("/users"))
	r.Needs.RegisterRoutes(protected.Group("/needs"))
}
