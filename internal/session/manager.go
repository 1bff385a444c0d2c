package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/utils"
)

const CookieName = "tmr_admin"

var ErrNoSession = errors.New("no admin session")

// Manager issues and resolves admin session cookies.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{store: store, secret: secret, ttl: ttl, secure: secure, now: time.Now}
}

// Start stores a new session for the token issued at login and sets the
// cookie.
func (m *Manager) Start(c *fiber.Ctx, username, apiToken string) (*models.AdminSession, error) {
	expires := m.now().Add(m.ttl)
	s := &models.AdminSession{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  username,
		APIToken:  apiToken,
		ExpiresAt: expires,
	}
	if err := m.store.Create(c.UserContext(), s); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	value, err := utils.GenerateSessionToken(m.secret, s.ID, m.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return s, nil
}

// Load resolves the session named by the request cookie.
func (m *Manager) Load(c *fiber.Ctx) (*models.AdminSession, error) {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return nil, ErrNoSession
	}
	id, err := utils.ParseSessionToken(m.secret, raw)
	if err != nil {
		return nil, ErrNoSession
	}
	s, err := m.store.Get(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		m.drop(c.UserContext(), id)
		return nil, ErrNoSession
	}
	return s, nil
}

// End removes the stored session, if any, and expires the cookie.
func (m *Manager) End(c *fiber.Ctx) {
	if raw := c.Cookies(CookieName); raw != "" {
		if id, err := utils.ParseSessionToken(m.secret, raw); err == nil {
			m.drop(c.UserContext(), id)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (m *Manager) drop(ctx context.Context, id uuid.UUID) {
	if err := m.store.Delete(ctx, id); err != nil {
		log.Printf("[Session] failed to delete session %s: %v", id, err)
	}
}
