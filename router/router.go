package router

import (
	"travel-registration/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	root := app.Group("/", logger.New())

	root.Get("/health", h.GetHealth)

	// Registration form
	root.Get("/", h.GetIndex)
	root.Post("/submit", h.PostSubmit)

	// Admin
	root.Get("/admin", h.GetAdmin)
	root.Get("/download", h.GetDownload)
}
