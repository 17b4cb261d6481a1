package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service needs. It is built once at startup
// and handed to the components that use it; nothing mutates it afterwards.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string // empty disables Redis
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	RateLimitRequests int // 0 disables rate limiting
	RateLimitWindow   time.Duration

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	DefaultPageLimit int
	MaxPageLimit     int

	SeedAdminPassword string
	SeedUserPassword  string
}

// Load reads the optional env file at path, then environment variables,
// falling back to defaults for anything unset.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var parseErr error
	getInt := func(key, defaultValue string) int {
		raw := getEnv(key, defaultValue)
		n, err := strconv.Atoi(raw)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("invalid %s %q: %w", key, raw, err)
		}
		return n
	}

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PostgresHost:         getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:         getInt("POSTGRES_PORT", "5432"),
		PostgresUser:         getEnv("POSTGRES_USER", "user"),
		PostgresPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:           getEnv("POSTGRES_DB", "database"),
		PostgresMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PostgresMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		RedisHost:         getEnv("REDIS_HOST", ""),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),

		RateLimitRequests: getInt("RATE_LIMIT_REQUESTS", "100"),
		RateLimitWindow:   time.Duration(getInt("RATE_LIMIT_WINDOW_SECOND", "60")) * time.Second,

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "todo-events"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "super-secret-key"),
		JWTExp:       time.Duration(getInt("JWT_EXP_SECOND", "1800")) * time.Second,

		DefaultPageLimit: getInt("PAGINATION_DEFAULT_LIMIT", "20"),
		MaxPageLimit:     getInt("PAGINATION_MAX_LIMIT", "100"),

		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedUserPassword:  getEnv("SEED_USER_PASSWORD", ""),
	}
	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.DefaultPageLimit < 1 || cfg.MaxPageLimit < cfg.DefaultPageLimit {
		return nil, fmt.Errorf("invalid pagination limits: default %d, max %d", cfg.DefaultPageLimit, cfg.MaxPageLimit)
	}

	return cfg, nil
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port, or "" when Redis is disabled.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
