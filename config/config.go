package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/models"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	minSessionSecretBytes = 32
	devSessionSecret      = "dev-only-session-secret-change-me-please"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DB DBConfig

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	// RedisAddr empty keeps sessions in process memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type DBConfig struct {
	Driver   string // postgres | mysql | sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite only
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	cfg := Config{
		Port:     getEnvOrDefault("PORT", "8080"),
		GinMode:  getEnvOrDefault("GIN_MODE", "debug"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnvOrDefault("DB_DRIVER", "postgres")),
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnvOrDefault("DB_NAME", "health"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
			Path:     getEnvOrDefault("DB_PATH", "health.db"),
		},
		SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SessionTTL:    getDurationEnvOrDefault("SESSION_TTL", 24*time.Hour),
		CookieSecure:  getBoolEnvOrDefault("COOKIE_SECURE", false),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getIntEnvOrDefault("REDIS_DB", 0),
	}

	switch cfg.DB.Driver {
	case "postgres":
		cfg.DB.Port = getEnvOrDefault("DB_PORT", "5432")
	case "mysql":
		cfg.DB.Port = getEnvOrDefault("DB_PORT", "3306")
	case "sqlite":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	if cfg.SessionSecret == "" {
		if cfg.GinMode == "release" {
			return Config{}, errors.New("SESSION_SECRET must be set in release mode")
		}
		log.Warn().Msg("SESSION_SECRET not set, using development secret")
		cfg.SessionSecret = devSessionSecret
	}
	if len(cfg.SessionSecret) < minSessionSecretBytes {
		return Config{}, fmt.Errorf("SESSION_SECRET must be at least %d characters", minSessionSecretBytes)
	}

	return cfg, nil
}

// DSN builds the driver specific connection string.
func (c DBConfig) DSN() string {
	switch c.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
			c.User, c.Password, c.Host, c.Port, c.Name)
	case "sqlite":
		sep := "?"
		if strings.Contains(c.Path, "?") {
			sep = "&"
		}
		return c.Path + sep + "_foreign_keys=on"
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	}
}

func OpenDB(c DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.Driver {
	case "mysql":
		dialector = mysql.Open(c.DSN())
	case "sqlite":
		dialector = sqlite.Open(c.DSN())
	default:
		dialector = postgres.Open(c.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", c.Driver, err)
	}
	return db, nil
}

// Migrate creates the five tables. Users must go first so the cascading
// foreign keys on the log tables have something to reference.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.DietLog{},
		&models.ExerciseLog{},
		&models.HealthGoal{},
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		log.Warn().Str("key", key).Str("value", raw).Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}
	return value
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Dur("default", defaultValue).Msg("invalid duration, using default")
		return defaultValue
	}
	return value
}

func getBoolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
