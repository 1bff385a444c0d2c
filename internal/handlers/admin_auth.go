package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/forms"
	"github.com/example/tmrsite/internal/middleware"
	"github.com/example/tmrsite/internal/session"
	"github.com/example/tmrsite/internal/views"
)

const (
	adminHome          = "/admin/dashboard"
	invalidCredentials = "Invalid credentials"
)

// AuthHandler signs admins in and out.
type AuthHandler struct {
	base
	sessions  *session.Manager
	validator *forms.Validator
}

func NewAuthHandler(api *apiclient.Client, renderer *views.Renderer, site views.Site, sessions *session.Manager, validator *forms.Validator) *AuthHandler {
	return &AuthHandler{base: newBase(api, renderer, site), sessions: sessions, validator: validator}
}

type LoginData struct {
	Username string
	Error    string
}

// LoginPage shows the sign-in form, or the dashboard when already signed in.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if _, err := h.sessions.Load(c); err == nil {
		return c.Redirect(adminHome, fiber.StatusFound)
	}
	return h.render(c, fiber.StatusOK, "admin/login", "", views.SEOInput{Title: "Admin Login"}, LoginData{})
}

// Login exchanges the credentials for an API token and starts a session.
// Nothing is stored when the API refuses them.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in forms.Login
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	fail := func(status int, msg string) error {
		return h.render(c, status, "admin/login", "", views.SEOInput{Title: "Admin Login"}, LoginData{Username: in.Username, Error: msg})
	}

	if errs := h.validator.Check(&in); errs.Any() {
		return fail(fiber.StatusUnprocessableEntity, "Username and password are required")
	}

	token, err := h.api.Login(c.UserContext(), in.Username, in.Password)
	if err != nil {
		log.Printf("[Auth] login for %q refused: %v", in.Username, err)
		return fail(fiber.StatusUnauthorized, invalidCredentials)
	}

	if _, err := h.sessions.Start(c, in.Username, token); err != nil {
		log.Printf("[Auth] start session: %v", err)
		return fail(fiber.StatusInternalServerError, "Could not start a session. Please try again.")
	}

	log.Printf("[Auth] %s signed in", in.Username)
	return c.Redirect(adminHome, fiber.StatusSeeOther)
}

// Logout ends the session and returns to the login page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.End(c)
	if views.IsHTMX(c) {
		c.Set("HX-Redirect", middleware.LoginPath)
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect(middleware.LoginPath, fiber.StatusSeeOther)
}
