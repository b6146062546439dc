package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes. The rate limiter guards
// every /api route; nil disables it.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter) {
	app.Get("/healthz", handlers.Healthz)

	api := app.Group("/api")
	if rateLimiter != nil {
		api.Use(rateLimiter.Middleware())
	}

	// Credibility
	api.Post("/fact-check", handlers.FactCheck)
	api.Get("/sources", handlers.Source)

	api.Get("/policies", handlers.Policies)

	// Assistant
	api.Post("/chat", handlers.Chat)
	api.Post("/chat/stream", handlers.ChatStream)

	api.Get("/news/politician", handlers.PoliticianNews)
}
