package database

import (
	"fmt"
	"strings"

	"wealthview/internal/config"
)

// Driver names accepted by NewManager.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	sqliteScheme = "sqlite://"
)

// Config holds database configuration
type Config struct {
	Driver         string
	URL            string
	SQLitePath     string
	MigrationsPath string
}

// NewConfig derives the database configuration from the application config.
// DATABASE_URL wins over the individual DB_* settings; a sqlite:// URL
// selects the SQLite driver with the URL's path as the database file.
func NewConfig(app *config.Config) *Config {
	cfg := &Config{
		Driver:         app.DBDriver,
		URL:            app.DatabaseURL,
		SQLitePath:     app.SQLitePath,
		MigrationsPath: "file://migrations",
	}

	if path, ok := strings.CutPrefix(cfg.URL, sqliteScheme); ok {
		cfg.Driver = DriverSQLite
		cfg.SQLitePath = path
		return cfg
	}

	if cfg.URL == "" {
		cfg.URL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			app.DBUser, app.DBPassword, app.DBHost, app.DBPort, app.DBName, app.DBSSLMode)
	}
	return cfg
}

// DSN returns the connection string handed to the GORM dialector.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return c.URL
}
