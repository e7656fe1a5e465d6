package ws

import (
	"testing"
	"time"

	"caps-connect/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func testTokens() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestHandlerAuthorize_AcceptsAccessToken(t *testing.T) {
	tokens := testTokens()
	access, err := tokens.GenerateAccessToken(uuid.New(), "admin@example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := NewHandler(NewHub(nil), tokens, nil)
	if err := h.authorize(access); err != nil {
		t.Fatalf("expected access token accepted, got %v", err)
	}
}

func TestHandlerAuthorize_RejectsMissingToken(t *testing.T) {
	h := NewHandler(NewHub(nil), testTokens(), nil)

	err := h.authorize("")
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %v", err)
	}
}

func TestHandlerAuthorize_RejectsGarbageToken(t *testing.T) {
	h := NewHandler(NewHub(nil), testTokens(), nil)

	err := h.authorize("not-a-jwt")
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %v", err)
	}
}

func TestHandlerAuthorize_RejectsRefreshToken(t *testing.T) {
	tokens := testTokens()
	refresh, err := tokens.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := NewHandler(NewHub(nil), tokens, nil)

	authErr := h.authorize(refresh)
	fe, ok := authErr.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for refresh token, got %v", authErr)
	}
}
