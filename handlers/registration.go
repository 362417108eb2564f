package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"travel-registration/errors"
	"travel-registration/model"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

const (
	msgPhoneFormat     = "Phone number must be exactly 8 digits."
	msgDepositRequired = "Please confirm that you have paid the deposit."
	msgFieldsRequired  = "Please fill in all fields."
	msgSaved           = "Registration saved. Thank you!"
)

// GetIndex renders the registration form with the catalog injected.
func (h *Handler) GetIndex(c *fiber.Ctx) error {
	message, kind := h.flash.Pop(c)
	return c.Render("index", fiber.Map{
		"Routes":       h.catalog.Routes(),
		"FlashMessage": message,
		"FlashKind":    kind,
	})
}

// PostSubmit validates one form post and appends the registration. Checks
// run in order and the first failure is the one reported; nothing is
// persisted unless every check passes.
func (h *Handler) PostSubmit(c *fiber.Ctx) error {
	fullName := strings.TrimSpace(c.FormValue("full_name"))
	phone := strings.TrimSpace(c.FormValue("phone"))
	email := strings.TrimSpace(c.FormValue("email"))
	route := c.FormValue("route")
	pkg := c.FormValue("package")

	if !validPhone(phone) {
		return h.reject(c, errors.New(errors.Validation, msgPhoneFormat))
	}
	if !depositConfirmed(c.FormValue("deposit_confirmed")) {
		return h.reject(c, errors.New(errors.Validation, msgDepositRequired))
	}
	if !allPresent(fullName, phone, email, route, pkg) {
		return h.reject(c, errors.New(errors.Validation, msgFieldsRequired))
	}

	totalPrice, deposit, err := h.catalog.PriceFor(route, pkg)
	if err != nil {
		return h.reject(c, err)
	}
	departure, err := h.catalog.Departure(route)
	if err != nil {
		return h.reject(c, err)
	}

	reg := model.Registration{
		Timestamp:        time.Now().Format(model.TimestampLayout),
		FullName:         fullName,
		Phone:            phone,
		Email:            email,
		Route:            route,
		DepartureDate:    departure,
		Package:          pkg,
		TotalPrice:       totalPrice,
		Deposit:          deposit,
		DepositConfirmed: "Yes",
	}
	if err := h.store.Append(reg); err != nil {
		return h.reject(c, err)
	}

	h.flash.Set(c, flashSuccess, msgSaved)
	return c.Redirect("/")
}

// reject flashes the user-facing message for err and redirects back to the
// form. Non-validation failures keep their detail in the server log only.
func (h *Handler) reject(c *fiber.Ctx, err error) error {
	if errors.KindOf(err) != errors.Validation {
		log.Printf("submit: %v", err)
	}
	h.flash.Set(c, flashError, errors.UserMessage(err))
	return c.Redirect("/")
}
