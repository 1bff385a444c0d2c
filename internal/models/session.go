package models

import "time"

// AdminSession binds a browser session to the API token issued by the
// backend at login. Only the session ID leaves the server.
type AdminSession struct {
	BaseModel
	Username  string    `gorm:"index" json:"username"`
	APIToken  string    `json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}

// Expired reports whether the session is no longer usable at now.
func (s *AdminSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
