package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/appnetwork/backend/internal/domain"
)

const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

// Config holds all runtime configuration loaded from environment variables.
// The database defaults match the docker-compose setup the service ships with.
type Config struct {
	// Server
	HTTPPort     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MetricsAddr  string

	// Database probe
	DBDriver         string
	DBHost           string
	DBPort           int
	DBName           string
	DBUser           string
	DBPassword       string
	DBSSLMode        string
	DBConnectTimeout time.Duration

	// DatabaseURL, when set, overrides the DB_* connection fields it names.
	DatabaseURL string
}

// Load reads an optional .env file (ENV_FILE, default ".env") and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8000"),
		ReadTimeout:  getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getDuration("WRITE_TIMEOUT", 0),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),

		DBDriver:         getEnv("DB_DRIVER", DriverPgx),
		DBHost:           getEnv("DB_HOST", "database"),
		DBPort:           getInt("DB_PORT", 5432),
		DBName:           getEnv("DB_NAME", "appdb"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "dbpass"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		DBConnectTimeout: getDuration("DB_CONNECT_TIMEOUT", 0),

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if cfg.DatabaseURL != "" {
		if err := cfg.applyDatabaseURL(cfg.DatabaseURL); err != nil {
			return nil, err
		}
	}

	switch cfg.DBDriver {
	case DriverPgx, DriverPq:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q: must be %q or %q", cfg.DBDriver, DriverPgx, DriverPq)
	}

	return cfg, nil
}

// Attempt returns the connection parameters for one database probe.
func (c *Config) Attempt() domain.ConnectionAttempt {
	return domain.ConnectionAttempt{
		Host:           c.DBHost,
		Port:           c.DBPort,
		Database:       c.DBName,
		User:           c.DBUser,
		Password:       c.DBPassword,
		SSLMode:        c.DBSSLMode,
		ConnectTimeout: c.DBConnectTimeout,
	}
}

// applyDatabaseURL copies the parts of a postgres:// URL over the DB_* fields.
// Parts the URL leaves out keep their current values. Only the sslmode and
// connect_timeout query parameters are honoured.
func (c *Config) applyDatabaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("DATABASE_URL: unsupported scheme %q", u.Scheme)
	}

	if h := u.Hostname(); h != "" {
		c.DBHost = h
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("DATABASE_URL: invalid port %q", p)
		}
		c.DBPort = port
	}
	if name := strings.TrimPrefix(u.Path, "/"); name != "" {
		c.DBName = name
	}
	if u.User != nil {
		c.DBUser = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			c.DBPassword = pw
		}
	}

	q := u.Query()
	if m := q.Get("sslmode"); m != "" {
		c.DBSSLMode = m
	}
	if t := q.Get("connect_timeout"); t != "" {
		secs, err := strconv.Atoi(t)
		if err != nil {
			return fmt.Errorf("DATABASE_URL: invalid connect_timeout %q", t)
		}
		c.DBConnectTimeout = time.Duration(secs) * time.Second
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
