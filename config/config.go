// Package config reads CLI configuration from the environment and an
// optional .env.local file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// SupabaseURL is the project URL, or directly a postgres://
	// connection string.
	SupabaseURL    string
	ServiceRoleKey string

	// DatabaseURL optionally overrides the derived connection string.
	DatabaseURL string

	WorkbookPath string
	SQLitePath   string
}

// Load reads configuration. A .env.local in the working directory is
// consulted first, matching the web app's layout; values already present
// in the environment win over file values.
func Load() *Config {
	godotenv.Load(".env.local")

	return &Config{
		SupabaseURL:    envFirst("VITE_SUPABASE_URL", "SUPABASE_URL"),
		ServiceRoleKey: envFirst("VITE_SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_ROLE_KEY"),
		DatabaseURL:    envFirst("SUPABASE_DB_URL", "DATABASE_URL"),
		WorkbookPath:   envOr("CITYBUS_WORKBOOK", "bus routes.xlsx"),
		SQLitePath:     envOr("CITYBUS_SQLITE", "citybus.db"),
	}
}

// ValidateCredentials reports missing Supabase credentials, with
// remediation steps in the message.
func (c *Config) ValidateCredentials() error {
	if c.SupabaseURL != "" && c.ServiceRoleKey != "" {
		return nil
	}

	return fmt.Errorf(`missing Supabase credentials

Please set the following in your .env.local file:
  - VITE_SUPABASE_URL
  - VITE_SUPABASE_SERVICE_ROLE_KEY

To get your credentials:
1. Go to https://supabase.com and create a project
2. Navigate to Settings > API
3. Copy your Project URL and service_role key
4. Update .env.local with your actual values`)
}

// PostgresDSN derives a lib/pq connection string. An explicit
// SUPABASE_DB_URL/DATABASE_URL wins; a postgres:// SupabaseURL is used
// verbatim; otherwise the DSN is assembled from the project URL and the
// service role key.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if strings.HasPrefix(c.SupabaseURL, "postgres://") || strings.HasPrefix(c.SupabaseURL, "postgresql://") {
		return c.SupabaseURL
	}

	host := strings.TrimPrefix(c.SupabaseURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://postgres:%s@db.%s:5432/postgres?sslmode=require", c.ServiceRoleKey, host)
}

func envFirst(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
