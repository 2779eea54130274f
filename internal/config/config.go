package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the admin service reads from the environment.
type Config struct {
	Env       string
	Port      string
	LogLevel  string
	LogFormat string

	// Static operator credentials checked at login.
	AdminEmail    string
	AdminPassword string

	DatabaseURL     string
	DBMaxIdleConns  int
	DBMaxOpenConns  int
	DBConnLifetime  time.Duration
	DBConnIdleTime  time.Duration
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	SessionTTL      time.Duration
	SnapshotTTL     time.Duration
	CORSAllowOrigin string
	LoginRateLimit  int
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// devJWTSecret signs tokens outside production when JWT_SECRET is unset.
const devJWTSecret = "motoradmin-dev"

// Load builds a Config from the process environment.
func Load() Config {
	cfg := Config{
		Env:       GetEnv("ENV", "development"),
		Port:      GetEnv("PORT", "3000"),
		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "console"),

		AdminEmail:    GetEnv("ADMIN_EMAIL", ""),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),

		DatabaseURL:    GetEnv("DATABASE_URL", postgresDSN()),
		DBMaxIdleConns: GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		DBConnLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		DBConnIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),

		RedisHost:     GetEnv("REDIS_HOST", "localhost"),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),

		JWTSecret:       GetEnv("JWT_SECRET", ""),
		SessionTTL:      GetDurationEnv("SESSION_TTL", 12*time.Hour),
		SnapshotTTL:     GetDurationEnv("SNAPSHOT_TTL", 5*time.Minute),
		CORSAllowOrigin: GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		LoginRateLimit:  GetIntEnv("LOGIN_RATE_LIMIT", 5),
	}
	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		cfg.JWTSecret = devJWTSecret
	}
	return cfg
}

// Validate reports configuration that makes the service unusable.
func (c Config) Validate() error {
	var missing []string
	if c.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}
	if c.AdminPassword == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Printf("invalid duration for %s=%q, using default %s", key, val, defaultVal)
	}
	return defaultVal
}

func postgresDSN() string {
	return "host=" + GetEnv("DB_HOST", "localhost") +
		" user=" + GetEnv("DB_USER", "postgres") +
		" password=" + GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + GetEnv("DB_NAME", "motoradmin") +
		" port=" + GetEnv("DB_PORT", "5432") +
		" sslmode=disable"
}
