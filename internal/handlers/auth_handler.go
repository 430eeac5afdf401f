package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nourjazi01/hack-seneca/internal/session"
)

type loginService interface {
	Login(ctx context.Context, userID string) (*session.Session, error)
}

type conversationStarter interface {
	StartConversation(userID string)
}

type AuthHandler struct {
	sessions      loginService
	conversations conversationStarter
}

type loginRequest struct {
	UserID string `json:"user_id"`
}

func NewAuthHandler(sessions loginService, conversations conversationStarter) *AuthHandler {
	return &AuthHandler{sessions: sessions, conversations: conversations}
}

// Login authenticates a user id and installs their session. Validation
// failures are in-band (success=false with 200) rather than 4xx, which is
// what the frontend expects.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	userID := strings.TrimSpace(req.UserID)
	sess, err := h.sessions.Login(c.Context(), userID)
	if err != nil {
		if errors.Is(err, session.ErrInvalidUserID) {
			return c.JSON(fiber.Map{
				"success": false,
				"message": "Invalid user ID format. Please use format: user_XXXXX",
			})
		}
		log.Printf("login for %s failed: %v", userID, err)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Login failed. Please try again.",
		})
	}

	h.conversations.StartConversation(sess.UserID)

	name := sess.UserID
	if sess.Data.Profile != nil && sess.Data.Profile.Name != "" {
		name = sess.Data.Profile.Name
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   fmt.Sprintf("Welcome back, %s!", name),
		"user_data": sess.Data,
	})
}
