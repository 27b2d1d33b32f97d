package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// DSN renders the lib/pq style connection string used by the postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type Config struct {
	Env                string
	Port               string
	Database           DatabaseConfig
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	RBACPolicyPath     string
	TaxTablesPath      string
	RateLimitRPS       float64
	RateLimitBurst     int
	OutboxPollInterval time.Duration
	MaxConnectRetries  int
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "payroll"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RBACPolicyPath: os.Getenv("RBAC_POLICY_PATH"),
		TaxTablesPath:  os.Getenv("TAX_TABLES_PATH"),
	}

	var err error
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}
	if cfg.MaxConnectRetries, err = getInt("MAX_CONNECT_RETRIES", 5); err != nil {
		return Config{}, err
	}
	if cfg.OutboxPollInterval, err = getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" && cfg.IsProduction() {
		return Config{}, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
