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

type NeedHandler struct {
	uc        usecase.NeedUsecase
	responses usecase.NeedResponseUsecase
	admin     *middleware.AdminMiddleware
}

type needRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"isActive"`
}

type respondRequest struct {
	Message string `json:"message"`
}

type reviewResponseRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

func NewNeedHandler(uc usecase.NeedUsecase, responses usecase.NeedResponseUsecase, admin *middleware.AdminMiddleware) *NeedHandler {
	return &NeedHandler{uc: uc, responses: responses, admin: admin}
}

func (h *NeedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)

	r.Post("/", h.Create, h.admin.Middleware())
	r.Put("/:id", h.Update, h.admin.Middleware())
	r.Delete("/:id", h.Delete, h.admin.Middleware())

	r.Post("/:id/responses", h.Respond)
	r.Get("/:id/responses", h.ListResponses, h.admin.Middleware())
	r.Put("/responses/:id", h.ReviewResponse, h.admin.Middleware())
}

func (h *NeedHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListActive(c.Context())
	if err != nil {
		return mapNeedUsecaseError(err)
	}

	out := make([]dto.NeedResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NewNeedResponse(n))
	}
	return response.Success(c, fiber.StatusOK, out)
}

func (h *NeedHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	n, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapNeedUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewNeedResponse(n))
}

func (h *NeedHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req needRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), userID, needInputFromRequest(req))
	if err != nil {
		return mapNeedUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, dto.NewNeedResponse(created))
}

func (h *NeedHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	var req needRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, needInputFromRequest(req))
	if err != nil {
		return mapNeedUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewNeedResponse(updated))
}

func (h *NeedHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapNeedUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, nil)
}

func (h *NeedHandler) Respond(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	needID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	var req respondRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.responses.Respond(c.Context(), userID, needID, req.Message)
	if err != nil {
		return mapNeedResponseError(err)
	}
	return response.Success(c, fiber.StatusCreated, dto.NewNeedVolunteerResponse(created))
}

func (h *NeedHandler) ListResponses(c fiber.Ctx) error {
	needID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	items, err := h.responses.ListForNeed(c.Context(), needID)
	if err != nil {
		return mapNeedResponseError(err)
	}

	out := make([]dto.NeedVolunteerResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewEnrichedNeedVolunteerResponse(item))
	}
	return response.Success(c, fiber.StatusOK, out)
}

func (h *NeedHandler) ReviewResponse(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	var req reviewResponseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.responses.Review(c.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		return mapNeedResponseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewNeedVolunteerResponse(updated))
}

func mapNeedResponseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNeedNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Need not found", nil, err)
	case errors.Is(err, usecase.ErrNeedResponseMissing):
		return middleware.NewAppError(fiber.StatusNotFound, "Response not found", nil, err)
	case errors.Is(err, usecase.ErrNeedInactive):
		return middleware.NewAppError(fiber.StatusBadRequest, "This need is no longer accepting responses", nil, err)
	case errors.Is(err, usecase.ErrAlreadyResponded):
		return middleware.NewAppError(fiber.StatusConflict, "You have already submitted a response to this need", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}

func needInputFromRequest(req needRequest) usecase.NeedInput {
	in := usecase.NeedInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    true,
	}
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}
	return in
}

func mapNeedUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNeedNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Need not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
