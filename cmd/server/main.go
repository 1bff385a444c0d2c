package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/tmrsite/internal/apiclient"
	"github.com/example/tmrsite/internal/config"
	"github.com/example/tmrsite/internal/database"
	"github.com/example/tmrsite/internal/handlers"
	"github.com/example/tmrsite/internal/media"
	"github.com/example/tmrsite/internal/routes"
	"github.com/example/tmrsite/internal/services"
	"github.com/example/tmrsite/internal/session"
	"github.com/example/tmrsite/internal/views"
)

func main() {
	cfg := config.Load()

	var store session.Store
	if cfg.DatabaseURL != "" {
		store = session.NewGormStore(database.Connect(cfg.DatabaseURL))
	} else {
		log.Println("[Session] DATABASE_URL not set, keeping admin sessions in memory")
		store = session.NewMemoryStore()
	}

	resolver := media.NewResolver(cfg.APIURL, cfg.MediaURL)
	renderer, err := views.New(resolver)
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	site := views.Site{
		Name:     cfg.SiteName,
		URL:      cfg.SiteURL,
		WhatsApp: cfg.WhatsAppNumber,
		Media:    resolver,
	}

	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	if !telegramService.Enabled() {
		log.Println("[Telegram] bot token or chat ID missing, lead notifications disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "TMR Industrial",
		ErrorHandler: handlers.ErrorHandler(renderer, site),
		BodyLimit:    20 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, cfg, routes.Deps{
		API:      apiclient.New(cfg.APIURL, cfg.APITimeout),
		Views:    renderer,
		Site:     site,
		Sessions: session.NewManager(store, cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure),
		Notifier: telegramService,
	})

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
