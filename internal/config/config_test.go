package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "http://api.local/api/", NormalizeBaseURL("http://api.local/api"))
	assert.Equal(t, "http://api.local/api/", NormalizeBaseURL("http://api.local/api///"))
	assert.Equal(t, "", NormalizeBaseURL("  "))
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("API_URL", "https://backend.example.com/api")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("CSRF_ENABLED", "false")
	t.Setenv("SESSION_SECRET", "secret")

	cfg := Load()
	require.NotNil(t, cfg)
	assert.Equal(t, "9999", cfg.AppPort)
	assert.Equal(t, "https://backend.example.com/api/", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.False(t, cfg.CSRFEnabled)
	assert.Equal(t, "TMR Industrial", cfg.SiteName)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
