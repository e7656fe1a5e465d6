package ws

import (
	"log"
	"net/http"
	"strings"

	"caps-connect/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	tokens jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, tokens jwt.Service, logger *log.Logger) *Handler {
	return &Handler{hub: hub, tokens: tokens, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleAdminWS validates the caller's access token, upgrades the connection
// and subscribes it to config-update events. Browsers cannot set headers on
// websocket dials, so the token is accepted as a query parameter too.
func (h *Handler) HandleAdminWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := c.Query("token")
	if token == "" {
		token = strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer"))
	}
	if err := h.authorize(token); err != nil {
		return err
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) authorize(token string) error {
	if h.tokens == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Authorization is not configured")
	}
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing authentication token")
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	if h.tokens.IsRefreshToken(claims) {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token cannot be used here")
	}
	return nil
}
