package handler

import (
	"errors"

	"caps-connect/internal/delivery/http/dto"
	"caps-connect/internal/delivery/http/middleware"
	"caps-connect/internal/domain/connection"
	"caps-connect/internal/domain/skill"
	"caps-connect/internal/domain/user"
	"caps-connect/internal/pkg/response"
	"caps-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc        usecase.ProfileUsecase
	responses usecase.NeedResponseUsecase
}

type updateProfileRequest struct {
	DisplayName  string `json:"displayName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Bio          string `json:"bio"`
	ProfilePhoto string `json:"profilePhoto"`
	LinkedinURL  string `json:"linkedinUrl"`
	Location     string `json:"location"`
}

type addSkillRequest struct {
	Category         string `json:"category"`
	SkillName        string `json:"skillName"`
	WillingnessLevel string `json:"willingnessLevel"`
	IsHobby          bool   `json:"isHobby"`
}

type addConnectionRequest struct {
	Sector               string `json:"sector"`
	OrganizationName     string `json:"organizationName"`
	ContactName          string `json:"contactName"`
	RelationshipStrength string `json:"relationshipStrength"`
}

func NewUserHandler(uc usecase.ProfileUsecase, responses usecase.NeedResponseUsecase) *UserHandler {
	return &UserHandler{uc: uc, responses: responses}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)

	r.Get("/me/skills", h.ListSkills)
	r.Post("/me/skills", h.AddSkill)
	r.Delete("/me/skills/:id", h.RemoveSkill)

	r.Get("/me/connections", h.ListConnections)
	r.Post("/me/connections", h.AddConnection)
	r.Delete("/me/connections/:id", h.RemoveConnection)

	r.Get("/me/responses", h.ListMyResponses)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewUserProfileResponse(usr))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, user.Profile{
		DisplayName:  req.DisplayName,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Bio:          req.Bio,
		ProfilePhoto: req.ProfilePhoto,
		LinkedinURL:  req.LinkedinURL,
		Location:     req.Location,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, dto.NewUserProfileResponse(usr))
}

func (h *UserHandler) ListSkills(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListSkills(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	out := make([]dto.SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, dto.NewSkillResponse(s))
	}
	return response.Success(c, fiber.StatusOK, out)
}

func (h *UserHandler) AddSkill(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), skill.Skill{
		UserID:           userID,
		Category:         req.Category,
		SkillName:        req.SkillName,
		WillingnessLevel: skill.WillingnessLevel(req.WillingnessLevel),
		IsHobby:          req.IsHobby,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, dto.NewSkillResponse(created))
}

func (h *UserHandler) RemoveSkill(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	if err := h.uc.RemoveSkill(c.Context(), id, userID); err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, nil)
}

func (h *UserHandler) ListConnections(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListConnections(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	out := make([]dto.ConnectionResponse, 0, len(items))
	for _, cn := range items {
		out = append(out, dto.NewConnectionResponse(cn))
	}
	return response.Success(c, fiber.StatusOK, out)
}

func (h *UserHandler) AddConnection(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addConnectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddConnection(c.Context(), connection.Connection{
		UserID:               userID,
		Sector:               req.Sector,
		OrganizationName:     req.OrganizationName,
		ContactName:          req.ContactName,
		RelationshipStrength: connection.RelationshipStrength(req.RelationshipStrength),
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, dto.NewConnectionResponse(created))
}

func (h *UserHandler) RemoveConnection(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}

	if err := h.uc.RemoveConnection(c.Context(), id, userID); err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, nil)
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}

func (h *UserHandler) ListMyResponses(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.responses.ListMine(c.Context(), userID)
	if err != nil {
		return mapNeedResponseError(err)
	}

	out := make([]dto.NeedVolunteerResponse, 0, len(items))
	for _, r := range items {
		out = append(out, dto.NewNeedVolunteerResponse(r))
	}
	return response.Success(c, fiber.StatusOK, out)
}
