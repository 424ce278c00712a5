package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server settings read from the environment
type Config struct {
	HTTPPort     string
	MongoURI     string
	MongoDB      string
	RedisAddr    string // Empty disables the form cache
	FormCacheTTL time.Duration
	UploadDir    string
	MaxUploadMB  int64
	CORSOrigins  string
	LogFormat    string // "json" or "text"
	Environment  string
}

// Load reads an optional .env file, then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env file", "error", err)
	}

	return &Config{
		HTTPPort:     getEnv("PORT", "5000"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "formcraft"),
		RedisAddr:    redisAddr(os.Getenv("REDIS_ADDR")),
		FormCacheTTL: getDuration("FORM_CACHE_TTL", time.Hour),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadMB:  getInt("MAX_UPLOAD_MB", 10),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "*"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		Environment:  getEnv("ENVIRONMENT", "development"),
	}
}

// MaxUploadBytes is the multipart body limit for uploads
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// CacheEnabled reports whether a Redis address was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// redisAddr strips a redis:// scheme so the value can be passed as Options.Addr
func redisAddr(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return defaultVal
	}
	return n
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", v)
		return defaultVal
	}
	return d
}
