package handlers

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

const msgWorkbookMissing = "No registrations file yet."

// GetAdmin lists every registration. This is the one path that reports an
// internal failure as a plain-text body instead of a redirect.
func (h *Handler) GetAdmin(c *fiber.Ctx) error {
	registrations, err := h.store.ReadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("error reading registrations: %v", err))
	}

	message, kind := h.flash.Pop(c)
	return c.Render("admin", fiber.Map{
		"Registrations": registrations,
		"FlashMessage":  message,
		"FlashKind":     kind,
	})
}

// GetDownload serves the backing workbook as an attachment named with the
// current date.
func (h *Handler) GetDownload(c *fiber.Ctx) error {
	path := h.store.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		h.flash.Set(c, flashError, msgWorkbookMissing)
		return c.Redirect("/admin")
	}

	name := fmt.Sprintf("registrations_%s.xlsx", time.Now().Format("20060102"))
	return c.Download(path, name)
}
