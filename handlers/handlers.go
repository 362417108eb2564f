package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travel-registration/catalog"
	"travel-registration/database"
	"travel-registration/middleware"
)

type Handler struct {
	catalog *catalog.Catalog
	store   *database.Store
	flash   *middleware.Flash
}

func New(cat *catalog.Catalog, store *database.Store, flash *middleware.Flash) *Handler {
	return &Handler{catalog: cat, store: store, flash: flash}
}

func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
