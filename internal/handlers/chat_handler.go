package handlers

import (
	"context"
	"errors"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/nourjazi01/hack-seneca/internal/chat"
	chatws "github.com/nourjazi01/hack-seneca/internal/websocket"
)

type turnService interface {
	HandleMessage(ctx context.Context, userID, message string) (string, error)
}

type authorizer interface {
	Authorize(userID string) bool
}

type ChatHandler struct {
	service  turnService
	sessions authorizer
	hub      *chatws.Hub
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func NewChatHandler(service turnService, sessions authorizer, hub *chatws.Hub) *ChatHandler {
	return &ChatHandler{service: service, sessions: sessions, hub: hub}
}

// Chat runs one chat turn. Upstream failures never surface as errors here:
// the service converts them into a degraded reply, so the client always gets
// a well-formed response body.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	reply, err := h.service.HandleMessage(c.Context(), req.UserID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process chat request"})
	}

	return c.JSON(fiber.Map{
		"response":  reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// WebSocketAuth gates the websocket upgrade: the claimed user id must belong
// to a live session before the connection is accepted.
func (h *ChatHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	userID := c.Query("user_id")
	if !h.sessions.Authorize(userID) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	c.Locals("user_id", userID)
	return c.Next()
}

func (h *ChatHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	client := chatws.NewClient(h.hub, conn, userID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.service)
}
