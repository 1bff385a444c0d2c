// Package session keeps admin sessions on the server. The browser only holds
// a signed cookie naming the session; the API token never leaves the store.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/tmrsite/internal/models"
)

var ErrNotFound = errors.New("session not found")

// Store persists admin sessions.
type Store interface {
	Create(ctx context.Context, s *models.AdminSession) error
	Get(ctx context.Context, id uuid.UUID) (*models.AdminSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryStore keeps sessions in process memory. Expired sessions are swept
// whenever a new one is created.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]models.AdminSession
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]models.AdminSession), now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context, s *models.AdminSession) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, existing := range m.sessions {
		if existing.Expired(now) {
			delete(m.sessions, id)
		}
	}
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.AdminSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// GormStore keeps sessions in the admin_sessions table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) Create(ctx context.Context, s *models.AdminSession) error {
	return g.db.WithContext(ctx).Create(s).Error
}

func (g *GormStore) Get(ctx context.Context, id uuid.UUID) (*models.AdminSession, error) {
	var s models.AdminSession
	err := g.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Delete(&models.AdminSession{}, "id = ?", id).Error
}
