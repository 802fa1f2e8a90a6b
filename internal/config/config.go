package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	App     AppConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	CORSOrigins []string
}

type StoreConfig struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AppConfig struct {
	ContentPath string
	StaticDir   string
}

type SessionConfig struct {
	TTLHours int
	Secure   bool
}

// Load reads the environment. main loads .env through godotenv/autoload
// before this runs.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", ""),
			CORSOrigins: getEnvAsList("CORS_ORIGINS"),
		},
		Store: StoreConfig{
			Backend:       getEnv("STORE_BACKEND", "sqlite"),
			SQLitePath:    getEnv("SQLITE_PATH", "data/portfolio.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			ContentPath: getEnv("CONTENT_PATH", ""),
			StaticDir:   getEnv("STATIC_DIR", "./static"),
		},
		Session: SessionConfig{
			TTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24),
			Secure:   getEnv("SESSION_SECURE", "false") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	switch strings.ToLower(c.Store.Backend) {
	case "memory", "sqlite", "redis":
	default:
		return fmt.Errorf("STORE_BACKEND must be memory, sqlite or redis, got %q", c.Store.Backend)
	}
	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
