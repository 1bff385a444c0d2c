// Package database holds the optional postgres connection used for admin
// sessions. Without DATABASE_URL sessions stay in memory.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/tmrsite/internal/models"
)

// Connect opens the session database and migrates admin_sessions. A missing
// database is created first when the DSN is a URL.
func Connect(dsn string) *gorm.DB {
	if err := ensureDatabase(dsn); err != nil {
		log.Fatalf("[Database] create session database: %v", err)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("[Database] connect: %v", err)
	}

	if err := conn.AutoMigrate(&models.AdminSession{}); err != nil {
		log.Fatalf("[Database] migrate admin_sessions: %v", err)
	}
	log.Printf("[Database] admin sessions stored in postgres")
	return conn
}

// maintenanceDSN points a URL DSN at the postgres maintenance database and
// returns the database it originally named. Key/value DSNs are left alone.
func maintenanceDSN(dsn string) (string, string, bool) {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return "", "", false
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", "", false
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" || name == "postgres" {
		return "", "", false
	}
	u.Path = "/postgres"
	return u.String(), name, true
}

func ensureDatabase(dsn string) error {
	admin, name, ok := maintenanceDSN(dsn)
	if !ok {
		return nil
	}

	conn, err := sql.Open("postgres", admin)
	if err != nil {
		return err
	}
	defer conn.Close()

	var exists bool
	err = conn.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("look up %s: %w", name, err)
	}
	if exists {
		return nil
	}

	_, err = conn.Exec("CREATE DATABASE " + pq.QuoteIdentifier(name))
	return err
}
