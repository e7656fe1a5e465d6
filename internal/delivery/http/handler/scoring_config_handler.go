package handler

import (
	"caps-connect/internal/delivery/http/dto"
	"caps-connect/internal/delivery/http/middleware"
	"caps-connect/internal/pkg/response"
	"caps-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScoringConfigHandler struct {
	uc    usecase.ScoringConfigUsecase
	admin *middleware.AdminMiddleware
}

func NewScoringConfigHandler(uc usecase.ScoringConfigUsecase, admin *middleware.AdminMiddleware) *ScoringConfigHandler {
	return &ScoringConfigHandler{uc: uc, admin: admin}
}

func (h *ScoringConfigHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/scoring-config", h.GetActive)
	r.Post("/scoring-config", h.Recompute, h.admin.Middleware())
}

func (h *ScoringConfigHandler) GetActive(c fiber.Ctx) error {
	out := h.uc.Active(c.Context())
	return response.Success(c, fiber.StatusOK, dto.NewActiveConfigResponse(out))
}

// Recompute replaces the active configuration with a freshly recommended one.
// Advisor unavailability is absorbed by the fallback, so the only failure
// modes here are stats collection and persistence.
func (h *ScoringConfigHandler) Recompute(c fiber.Ctx) error {
	cfg, err := h.uc.Recompute(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewScoringConfigResponse(cfg, false))
}
