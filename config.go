package printforge

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type envConfig struct {
	baseURL       string
	tokenFile     string
	redisAddr     string
	redisPassword string
	redisDB       int
	watchInterval time.Duration
}

var _ Config = (*envConfig)(nil)

// NewConfigFromEnv builds a Config from environment variables, loading .env
// first when one is present. Every value has a local-development default.
func NewConfigFromEnv() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("printforge: no .env file loaded")
	}

	return &envConfig{
		baseURL:       getEnv("PRINTFORGE_API_BASE_URL", "http://localhost:8080"),
		tokenFile:     getEnv("PRINTFORGE_TOKEN_FILE", defaultTokenFile()),
		redisAddr:     getEnv("PRINTFORGE_REDIS_ADDRESS", ""),
		redisPassword: getEnv("PRINTFORGE_REDIS_PASSWORD", ""),
		redisDB:       getEnvInt("PRINTFORGE_REDIS_DB", 0),
		watchInterval: getEnvDuration("PRINTFORGE_STORE_WATCH_INTERVAL", 0),
	}
}

func (c *envConfig) GetBaseURL() string                   { return c.baseURL }
func (c *envConfig) GetTokenFile() string                 { return c.tokenFile }
func (c *envConfig) GetRedisAddress() string              { return c.redisAddr }
func (c *envConfig) GetRedisPassword() string             { return c.redisPassword }
func (c *envConfig) GetRedisDB() int                      { return c.redisDB }
func (c *envConfig) GetStoreWatchInterval() time.Duration { return c.watchInterval }

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".printforge", "token")
	}
	return filepath.Join(home, ".printforge", "token")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("printforge: invalid %s=%q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("printforge: invalid %s=%q, using default %s", key, value, fallback)
		return fallback
	}
	return parsed
}
