package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	DBDriver           string
	DBHost             string
	DBPort             int
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DBTimezone         string
	SQLitePath         string
	StoreBackend       string
	ServerPort         int
	ServerHost         string
	ServerFramework    string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	AppEnv             string
	LogLevel           string
	AppName            string
	CorsAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int
	SwaggerHost        string
	SwaggerBasePath    string
	SwaggerSchemes     []string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisNamespace     string
	Timezone           string
	WatchdogSpec       string
	ReminderSpec       string
	AssistantBaseURL   string
	AssistantAPIKey    string
	AssistantID        string
	AssistantTimeout   time.Duration
	AssistantMaxPoll   time.Duration
	ApplyDirectives    bool
	VoiceChatURL       string
	TelegramToken      string
	TelegramChatID     int64
}

// LoadConfig loads configuration from .env file or environment variables.
func LoadConfig(envFile ...string) (*AppConfig, error) {
	if len(envFile) > 0 {
		if _, err := os.Stat(envFile[0]); err == nil {
			err := godotenv.Load(envFile[0])
			if err != nil {
				log.Printf("Warning: Could not load .env file: %v. Using environment variables or defaults.", err)
			}
		} else {
			log.Printf("Warning: Specified .env file %s not found. Using environment variables or defaults.", envFile[0])
		}
	} else {
		// Try loading default .env file if no specific file is provided
		if _, err := os.Stat("config.env"); err == nil {
			err := godotenv.Load("config.env")
			if err != nil {
				log.Printf("Warning: Could not load default config.env file: %v. Using environment variables or defaults.", err)
			}
		}
	}

	cfg := &AppConfig{
		DBDriver:           strings.ToLower(getStringEnv("DB_DRIVER", "sqlite")),
		DBHost:             getStringEnv("DB_HOST", "localhost"),
		DBPort:             getIntEnv("DB_PORT", 5432),
		DBUser:             getStringEnv("DB_USER", "postgres"),
		DBPassword:         getStringEnv("DB_PASSWORD", "password"),
		DBName:             getStringEnv("DB_NAME", "ubermensch"),
		DBSslMode:          getStringEnv("DB_SSL_MODE", "disable"),
		DBTimezone:         getStringEnv("DB_TIMEZONE", "UTC"),
		SQLitePath:         getStringEnv("SQLITE_PATH", "ubermensch.db"),
		StoreBackend:       strings.ToLower(getStringEnv("STORE_BACKEND", "database")),
		ServerPort:         getIntEnv("SERVER_PORT", 8080),
		ServerHost:         getStringEnv("SERVER_HOST", "0.0.0.0"),
		ServerFramework:    strings.ToLower(getStringEnv("SERVER_FRAMEWORK", "fiber")),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", "15s"),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", "15s"),
		ServerIdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", "60s"),
		AppEnv:             strings.ToLower(getStringEnv("APP_ENV", "development")),
		LogLevel:           strings.ToLower(getStringEnv("LOG_LEVEL", "info")),
		AppName:            getStringEnv("APP_NAME", "Ubermensch"),
		CorsAllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", "*"),
		RateLimitPerSecond: getFloatEnv("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		SwaggerHost:        getStringEnv("SWAGGER_HOST", "localhost:8080"),
		SwaggerBasePath:    getStringEnv("SWAGGER_BASE_PATH", "/api/v1"), // Defaulting to /api/v1
		SwaggerSchemes:     getSliceEnv("SWAGGER_SCHEMES", "http,https"),
		RedisAddr:          getStringEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getStringEnv("REDIS_PASSWORD", ""),
		RedisDB:            getIntEnv("REDIS_DB", 0),
		RedisNamespace:     getStringEnv("REDIS_NAMESPACE", "ubermensch:"),
		Timezone:           getStringEnv("TIMEZONE", "Local"),
		WatchdogSpec:       getStringEnv("WATCHDOG_SPEC", "@every 1m"),
		ReminderSpec:       getStringEnv("REMINDER_SPEC", "@every 1m"),
		AssistantBaseURL:   getStringEnv("ASSISTANT_BASE_URL", "https://api.openai.com/v1"),
		AssistantAPIKey:    getStringEnv("ASSISTANT_API_KEY", ""),
		AssistantID:        getStringEnv("ASSISTANT_ID", ""),
		AssistantTimeout:   getDurationEnv("ASSISTANT_POLL_TIMEOUT", "2m"),
		AssistantMaxPoll:   getDurationEnv("ASSISTANT_POLL_MAX_INTERVAL", "10s"),
		ApplyDirectives:    getBoolEnv("ASSISTANT_APPLY_DIRECTIVES", false),
		VoiceChatURL:       getStringEnv("VOICE_CHAT_URL", "https://chatgpt.com/"),
		TelegramToken:      getStringEnv("TELEGRAM_TOKEN", ""),
		TelegramChatID:     getInt64Env("TELEGRAM_CHAT_ID", 0),
	}

	// Validate framework choice
	if cfg.ServerFramework != "fiber" && cfg.ServerFramework != "gin" {
		log.Printf("Warning: Invalid SERVER_FRAMEWORK '%s'. Defaulting to 'fiber'.", cfg.ServerFramework)
		cfg.ServerFramework = "fiber"
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		log.Printf("Warning: Invalid DB_DRIVER '%s'. Defaulting to 'sqlite'.", cfg.DBDriver)
		cfg.DBDriver = "sqlite"
	}

	if cfg.StoreBackend != "database" && cfg.StoreBackend != "redis" {
		log.Printf("Warning: Invalid STORE_BACKEND '%s'. Defaulting to 'database'.", cfg.StoreBackend)
		cfg.StoreBackend = "database"
	}

	// Validate APP_ENV
	validAppEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validAppEnvs[cfg.AppEnv] {
		log.Printf("Warning: Invalid APP_ENV '%s'. Defaulting to 'development'.", cfg.AppEnv)
		cfg.AppEnv = "development"
	}

	return cfg, nil
}

func getStringEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid value for %s: %s. Using default %d.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getDurationEnv(key, defaultValue string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s: %s. Using default %s.", key, valueStr, defaultValue)
		defaultDur, _ := time.ParseDuration(defaultValue)
		return defaultDur
	}
	return value
}

func getSliceEnv(key, defaultValue string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		valueStr = defaultValue
	}
	if valueStr == "" {
		return []string{}
	}
	return strings.Split(valueStr, ",")
}

func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s: %s. Using default %f.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getInt64Env(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid value for %s: %s. Using default %d.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid bool value for %s: %s. Using default %t.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// Location resolves the configured timezone used for day boundaries, falling back to local time.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: Invalid TIMEZONE '%s'. Using local time.", c.Timezone)
		return time.Local
	}
	return loc
}
