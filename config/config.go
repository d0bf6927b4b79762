package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	HTTPPort         string
	ScoreCacheTTL    time.Duration
	CompletionPolicy string

	CORSAllowedOrigins string
	CORSAllowedMethods string
	CORSAllowedHeaders string
}

// Load reads configuration from the environment, with a .env file as
// fallback. MongoURI and RedisAddr may be left empty: the server then runs
// on the in-memory store and without the score cache.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "pollbase"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		ScoreCacheTTL:    getDuration("SCORE_CACHE_TTL", 5*time.Minute),
		CompletionPolicy: getEnv("COMPLETION_POLICY", "reject"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CORSAllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, OPTIONS"),
		CORSAllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
