package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/middleware"
	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/views"
)

// AdminHandler serves the back-office screens. Each resource lives in its own
// admin_*.go file.
type AdminHandler struct {
	base
	validator *forms.Validator
}

func NewAdminHandler(api *apiclient.Client, renderer *views.Renderer, site views.Site, validator *forms.Validator) *AdminHandler {
	return &AdminHandler{base: newBase(api, renderer, site), validator: validator}
}

type DashboardData struct {
	Stats models.LeadStats
	Error string
}

// Dashboard shows the lead and catalog counters.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.client(c).LeadStats(c.UserContext())
	data := DashboardData{Stats: stats}
	if err != nil {
		data.Error = apiFailure(c, "load stats", err)
	}
	return h.render(c, fiber.StatusOK, "admin/dashboard", "dashboard", views.SEOInput{Title: "Dashboard"}, data)
}

// deleted finishes a delete: htmx removes the row itself from an empty 200,
// plain forms are redirected back to the list.
func (h *AdminHandler) deleted(c *fiber.Ctx, list, what string, err error) error {
	if err != nil {
		msg := apiFailure(c, "delete "+what, err)
		if views.IsHTMX(c) {
			return h.views.Notify(c, "error", msg)
		}
		return redirectWith(c, list, "error", msg)
	}
	if views.IsHTMX(c) {
		return c.Status(fiber.StatusOK).SendString("")
	}
	return redirectWith(c, list, "message", what+" deleted")
}

// saved redirects to the list after a successful create or update.
func (h *AdminHandler) saved(c *fiber.Ctx, list, msg string) error {
	if views.IsHTMX(c) {
		c.Set("HX-Redirect", list+"?message="+url.QueryEscape(msg))
		return c.SendStatus(fiber.StatusOK)
	}
	return redirectWith(c, list, "message", msg)
}

// listFailed handles an API failure while loading a list screen. A rejected
// token sends the admin back to the login page.
func (h *AdminHandler) listFailed(c *fiber.Ctx, what string, err error) error {
	msg := apiFailure(c, "load "+what, err)
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return redirectWith(c, middleware.LoginPath, "error", msg)
	}
	return fiber.NewError(fiber.StatusBadGateway, msg)
}

// loadFailed handles an API failure while loading a record for editing.
func (h *AdminHandler) loadFailed(c *fiber.Ctx, list, what string, err error) error {
	if errors.Is(err, apiclient.ErrNotFound) {
		return redirectWith(c, list, "error", what+" not found")
	}
	return h.listFailed(c, what, err)
}
