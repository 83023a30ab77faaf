package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Port              string
	Env               string
	CORSAllowedOrigin string

	// Database
	DBDriver          string
	DBPath            string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	MigrationsEnabled bool

	// Budget
	DefaultMonthlyIncome decimal.Decimal

	// Backups
	BackupDir        string
	BackupInterval   time.Duration
	BackupKeep       int
	BackupRetryDelay time.Duration
	AutoBackup       bool

	// Admin auth
	AdminPasswordHash string
	AdminAPIKey       string
	JWTSecret         string
	JWTExpirationDur  time.Duration

	// Notifications
	TelegramBotToken string
	TelegramChatID   int64
	AMQPURL          string
	AMQPExchange     string
	AMQPQueue        string
}

// devJWTSecret is the public fallback signing key. Tokens signed with it
// are forgeable, so it is refused once password login is enabled.
const devJWTSecret = "fallback-secret-key-for-dev-only"

// ErrInsecureJWTSecret is returned by Validate when admin tokens would be
// signed with a missing or public key.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a private value when ADMIN_PASSWORD_HASH is set")

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:4200"),

		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBPath:            getEnv("DB_PATH", "fintrack.db"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "fintrack"),
		DBPassword:        getEnv("DB_PASSWORD", "fintrack"),
		DBName:            getEnv("DB_NAME", "fintrack"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		MigrationsEnabled: getBool("MIGRATIONS_ENABLED", true),

		BackupDir:  getEnv("BACKUP_DIR", "backups"),
		BackupKeep: getInt("BACKUP_KEEP", 20),
		AutoBackup: getBool("AUTO_BACKUP", true),

		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		JWTSecret:         getEnv("JWT_SECRET", devJWTSecret),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		AMQPURL:          getEnv("AMQP_URL", ""),
		AMQPExchange:     getEnv("AMQP_EXCHANGE", "fintrack.alerts"),
		AMQPQueue:        getEnv("AMQP_QUEUE", "fintrack.alerts"),
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.BackupInterval = getDuration("BACKUP_INTERVAL", 6*time.Hour)
	config.BackupRetryDelay = getDuration("BACKUP_RETRY_DELAY", 30*time.Minute)

	incomeStr := getEnv("DEFAULT_MONTHLY_INCOME", "8000")
	income, err := decimal.NewFromString(incomeStr)
	if err != nil || income.IsNegative() {
		log.Printf("Warning: invalid DEFAULT_MONTHLY_INCOME value '%s', falling back to 8000\n", incomeStr)
		income = decimal.NewFromInt(8000)
	}
	config.DefaultMonthlyIncome = income

	if chatID := getEnv("TELEGRAM_CHAT_ID", ""); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Printf("Warning: invalid TELEGRAM_CHAT_ID value '%s', Telegram alerts disabled\n", chatID)
		} else {
			config.TelegramChatID = id
		}
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// AdminAuthEnabled reports whether the backup routes require credentials.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminPasswordHash != "" || c.AdminAPIKey != ""
}

// Validate rejects settings the server must not start with.
func (c *Config) Validate() error {
	if c.AdminPasswordHash != "" && (c.JWTSecret == "" || c.JWTSecret == devJWTSecret) {
		return ErrInsecureJWTSecret
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %t\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
