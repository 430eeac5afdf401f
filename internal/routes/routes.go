package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/nourjazi01/hack-seneca/internal/agent"
	"github.com/nourjazi01/hack-seneca/internal/chat"
	"github.com/nourjazi01/hack-seneca/internal/config"
	"github.com/nourjazi01/hack-seneca/internal/handlers"
	"github.com/nourjazi01/hack-seneca/internal/session"
	"github.com/nourjazi01/hack-seneca/internal/store"
	chatws "github.com/nourjazi01/hack-seneca/internal/websocket"
)

// RegisterRoutes wires the whole request pipeline: record source →
// data store → session registry → chat service → handlers.
func RegisterRoutes(app *fiber.App, cfg *config.Config, source store.RecordSource) {
	dataStore := store.NewUserDataStore(source)
	registry := session.NewRegistry(dataStore, cfg.MultiSession)

	coach := agent.NewClient(&agent.Config{
		BaseURL:    cfg.AgentBaseURL,
		APIKey:     cfg.AgentAPIKey,
		Model:      cfg.AgentModel,
		MaxRetries: cfg.AgentMaxRetries,
		Timeout:    cfg.AgentTimeout,
	})
	chatService := chat.NewService(registry, coach, cfg.ExposeUpstreamErrors)

	hub := chatws.NewHub()
	go hub.Run()

	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(registry, chatService)
	chatHandler := handlers.NewChatHandler(chatService, registry, hub)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")
	api.Post("/login", authHandler.Login)
	api.Post("/chat", chatHandler.Chat)

	api.Use("/ws", chatHandler.WebSocketAuth)
	api.Get("/ws", websocket.New(chatHandler.HandleWebSocket))
}
