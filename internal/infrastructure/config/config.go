package config

import (
	"net/url"
	"os"
	"strconv"
)

// Settings carries every environment-driven knob the service reads.
//
// Supported env vars:
//   - PORT (default: 8000)
//   - POSTGRES_HOST (default: localhost)
//   - POSTGRES_PORT (default: 5432)
//   - POSTGRES_USER / POSTGRES_PASSWORD
//   - POSTGRES_DB (default: idea)
//   - POSTGRES_DB_SCHEMA (optional; sets search_path)
//   - LOG_LEVEL (default: info)
//   - LOG_FILE (optional; rotating log file path)
type Settings struct {
	Port int

	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSchema   string

	LogLevel string
	LogFile  string
}

func Load() Settings {
	return Settings{
		Port:             getenvInt("PORT", 8000),
		PostgresHost:     getenvDefault("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenvInt("POSTGRES_PORT", 5432),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getenvDefault("POSTGRES_DB", "idea"),
		PostgresSchema:   os.Getenv("POSTGRES_DB_SCHEMA"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
	}
}

// DatabaseURL assembles a pgx connection string from the settings.
func (s Settings) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.PostgresUser, s.PostgresPassword),
		Host:   s.PostgresHost + ":" + strconv.Itoa(s.PostgresPort),
		Path:   "/" + s.PostgresDB,
	}
	q := url.Values{}
	if s.PostgresSchema != "" {
		q.Set("search_path", s.PostgresSchema)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
