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
	Port                 string
	AppEnv               string
	DataDir              string
	DBUrl                string
	AgentBaseURL         string
	AgentAPIKey          string
	AgentModel           string
	AgentTimeout         time.Duration
	AgentMaxRetries      int
	MultiSession         bool
	ExposeUpstreamErrors bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:                 getEnv("PORT", "8000"),
		AppEnv:               normalizeEnv(getEnv("APP_ENV", "production")),
		DataDir:              getEnv("DATA_DIR", "users_data"),
		DBUrl:                getEnv("DB_URL", ""),
		AgentBaseURL:         getEnv("AGENT_BASE_URL", ""),
		AgentAPIKey:          getEnv("AGENT_API_KEY", ""),
		AgentModel:           getEnv("AGENT_MODEL", ""),
		AgentTimeout:         time.Duration(getEnvInt("AGENT_TIMEOUT_SECONDS", 60)) * time.Second,
		AgentMaxRetries:      getEnvInt("AGENT_MAX_RETRIES", 1),
		MultiSession:         getEnvBool("MULTI_SESSION", false),
		ExposeUpstreamErrors: getEnvBool("EXPOSE_UPSTREAM_ERRORS", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
