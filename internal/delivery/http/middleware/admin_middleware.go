package middleware

import (
	"caps-connect/internal/domain/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AdminMiddleware gates admin-only routes. It runs after AuthMiddleware and
// checks the authenticated user's admin flag.
type AdminMiddleware struct {
	users user.Repository
}

func NewAdminMiddleware(users user.Repository) *AdminMiddleware {
	return &AdminMiddleware{users: users}
}

func (m *AdminMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
		if !ok || userID == uuid.Nil {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		isAdmin, err := m.users.IsAdmin(c.Context(), userID)
		if err != nil {
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		if !isAdmin {
			return NewAppError(fiber.StatusForbidden, "Admin access required", nil, nil)
		}

		return c.Next()
	}
}
