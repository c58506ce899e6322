package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	LLMLogFilePath     string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	OtelEnabled        bool
	OtelEndpoint       string
	MigrateOnStart     bool
	ProductCacheTTL    time.Duration
	SeedOnEmpty        bool
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret   string
	AdminEmails []string // treated as admins even without an is_admin claim
}

type AIConfig struct {
	Provider       string // "gemini", "ollama" or "openai"
	Model          string
	BaseURL        string
	ApiKey         string
	Timeout        time.Duration
	MaxRetries     int
	AnswerCacheTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	provider := strings.ToLower(getEnv("AI_PROVIDER", "gemini"))

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			LLMLogFilePath:     getEnv("LLM_LOG_FILE_PATH", "logs/llm.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			MigrateOnStart:     getEnvAsBool("MIGRATE_ON_START", true),
			ProductCacheTTL:    getEnvAsDuration("PRODUCT_CACHE_TTL", time.Hour),
			SeedOnEmpty:        getEnvAsBool("SEED_ON_EMPTY", true),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:   getEnv("JWT_SECRET", ""),
			AdminEmails: getEnvAsList("ADMIN_EMAILS"),
		},
		Ai: AIConfig{
			Provider:       provider,
			Model:          getEnv("AI_MODEL", defaultModel(provider)),
			BaseURL:        getEnv("AI_BASE_URL", ""),
			ApiKey:         getEnv("AI_API_KEY", getEnv("GEMINI_API_KEY", "")),
			Timeout:        getEnvAsDuration("AI_TIMEOUT", 10*time.Second),
			MaxRetries:     getEnvAsInt("AI_MAX_RETRIES", 1),
			AnswerCacheTTL: getEnvAsDuration("AI_ANSWER_CACHE_TTL", 5*time.Minute),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func defaultModel(provider string) string {
	switch provider {
	case "ollama":
		return "llama3"
	case "openai":
		return "gpt-4o-mini"
	default:
		return "gemini-1.5-flash"
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("10s") or plain seconds ("10").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.ToLower(item))
		}
	}
	return out
}
