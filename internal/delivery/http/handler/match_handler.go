package handler

import (
	"errors"

	"caps-connect/internal/delivery/http/dto"
	"caps-connect/internal/delivery/http/middleware"
	"caps-connect/internal/pkg/response"
	"caps-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/caps-score", h.TopMatches)
}

func (h *MatchHandler) TopMatches(c fiber.Ctx) error {
	params := usecase.MatchParams{Category: c.Query("category")}

	if raw := c.Query("needId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid needId", nil, err)
		}
		params.NeedID = &id
	}

	if params.NeedID == nil && params.Category == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Either category or needId is required", nil, nil)
	}

	out, err := h.uc.TopMatches(c.Context(), params)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	results := make([]dto.MatchResultResponse, 0, len(out.Results))
	for _, it := range out.Results {
		results = append(results, dto.NewMatchResultResponse(it))
	}

	metadata := map[string]any{"category": out.Category}
	if out.NeedID != nil {
		metadata["needId"] = out.NeedID
	}
	return response.SuccessWithMetadata(c, fiber.StatusOK, results, metadata)
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNeedNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Need not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
