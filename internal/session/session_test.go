package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/tmrsite/internal/models"
)

func newTestApp(m *Manager) *fiber.App {
	app := fiber.New()
	app.Post("/start", func(c *fiber.Ctx) error {
		if _, err := m.Start(c, "admin", "api-token"); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		s, err := m.Load(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(s.Username + ":" + s.APIToken)
	})
	app.Post("/end", func(c *fiber.Ctx) error {
		m.End(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("cookie %s not set", CookieName)
	return nil
}

func TestManagerLifecycle(t *testing.T) {
	store := NewMemoryStore()
	app := newTestApp(NewManager(store, "secret", time.Hour, false))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/start", nil))
	require.NoError(t, err)
	ck := sessionCookie(t, resp)
	assert.True(t, ck.HttpOnly)
	assert.NotContains(t, ck.Value, "api-token")
	assert.Equal(t, 1, store.Len())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ck.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "admin:api-token", string(body))

	req = httptest.NewRequest(http.MethodPost, "/end", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ck.Value})
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ck.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestManagerRejectsMissingAndForgedCookies(t *testing.T) {
	app := newTestApp(NewManager(NewMemoryStore(), "secret", time.Hour, false))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestManagerDropsExpiredSession(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, "secret", time.Hour, false)
	app := newTestApp(m)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/start", nil))
	require.NoError(t, err)
	ck := sessionCookie(t, resp)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ck.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreSweepsExpiredOnCreate(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	stale := &models.AdminSession{Username: "old", ExpiresAt: now.Add(-time.Minute)}
	require.NoError(t, store.Create(ctx, stale))
	live := &models.AdminSession{Username: "live", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Create(ctx, live))

	assert.Equal(t, 1, store.Len())
	_, err := store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := store.Get(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, "live", got.Username)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormStoreCreate(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "admin_sessions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := &models.AdminSession{Username: "admin", APIToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Create(context.Background(), s))
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreGet(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewGormStore(db)
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "username", "api_token", "expires_at"}).
		AddRow(id.String(), now, now, "admin", "tok", now.Add(time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admin_sessions"`)).WillReturnRows(rows)

	s, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "tok", s.APIToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewGormStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admin_sessions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreDelete(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewGormStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "admin_sessions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Delete(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
