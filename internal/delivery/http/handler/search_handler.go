package handler

import (
	"errors"
	"strconv"

	"caps-connect/internal/delivery/http/dto"
	"caps-connect/internal/delivery/http/middleware"
	"caps-connect/internal/pkg/response"
	"caps-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
}

func (h *SearchHandler) Search(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	out, err := h.uc.Search(c.Context(), c.Query("q"), limit)
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	results := make([]dto.SearchResultResponse, 0, len(out.Results))
	for _, it := range out.Results {
		results = append(results, dto.NewSearchResultResponse(it))
	}

	metadata := map[string]any{
		"query":        out.Query,
		"totalResults": out.TotalResults,
		"returned":     len(results),
	}
	return response.SuccessWithMetadata(c, fiber.StatusOK, results, metadata)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapSearchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrQueryTooShort):
		return middleware.NewAppError(fiber.StatusBadRequest, "Query must be at least 2 characters", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
