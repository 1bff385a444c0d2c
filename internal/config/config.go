package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration values.
type Config struct {
	AppPort     string        `envconfig:"APP_PORT" default:"8080"`
	APIURL      string        `envconfig:"API_URL" default:"http://127.0.0.1:8001/api/"`
	MediaURL    string        `envconfig:"MEDIA_URL"`
	APITimeout  time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`

	SessionSecret string        `envconfig:"SESSION_SECRET" default:"change-me-tmr-session-secret"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	CookieSecure  bool          `envconfig:"COOKIE_SECURE" default:"false"`
	CSRFEnabled   bool          `envconfig:"CSRF_ENABLED" default:"true"`

	SiteName       string `envconfig:"SITE_NAME" default:"TMR Industrial"`
	SiteURL        string `envconfig:"SITE_URL"`
	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER" default:"256789100442"`

	TelegramBotToken  string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramAdminChat string `envconfig:"TELEGRAM_ADMIN_CHAT_ID"`
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to process configuration: %v", err)
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if strings.TrimSpace(cfg.SessionSecret) == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	cfg.APIURL = NormalizeBaseURL(cfg.APIURL)
	return &cfg
}

// NormalizeBaseURL makes sure the API base ends with a single slash so that
// relative resource paths join cleanly.
func NormalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return strings.TrimRight(raw, "/") + "/"
}
