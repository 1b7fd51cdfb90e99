package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionStoreCookie   = "cookie"
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
)

type Config struct {
	ServerPort string
	Env        string
	LogLevel   string
	Timezone   string

	APIBaseURL string
	APITimeout time.Duration

	SessionStore  string
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool
	CSRFKey       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DBUrl string

	CORSAllowedOrigins []string
	LoginRatePerMinute int

	UploadMaxBytes    int64
	ImageMaxDimension int
	ImageMaxPixels    int
	CheckEmailDomain  bool

	OTELEnabled     bool
	OTELEndpoint    string
	OTELSampleRatio float64
}

// Load reads .env when present and then the process environment.
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Timezone:   getEnv("APP_TIMEZONE", "UTC"),

		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		APITimeout: getDuration("API_TIMEOUT", 10*time.Second),

		SessionStore:  strings.ToLower(getEnv("SESSION_STORE", SessionStoreCookie)),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		SecureCookies: getBool("COOKIE_SECURE", false),
		CSRFKey:       getEnv("CSRF_KEY", "changeme-changeme-changeme-32byt"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		DBUrl: getEnv("DATABASE_URL", ""),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		LoginRatePerMinute: getInt("LOGIN_RATE_PER_MINUTE", 20),

		UploadMaxBytes:    int64(getInt("UPLOAD_MAX_BYTES", 25*1024*1024)),
		ImageMaxDimension: getInt("IMAGE_MAX_DIMENSION", 2048),
		ImageMaxPixels:    getInt("IMAGE_MAX_PIXELS", 40_000_000),
		CheckEmailDomain:  getBool("CHECK_EMAIL_DOMAIN", false),

		OTELEnabled:     getBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTELSampleRatio: getFloat("OTEL_SAMPLING_RATIO", 1),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil && v >= 0 && v <= 1 {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return def
}

func getList(key string, def []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) HasDatabase() bool {
	return c.DBUrl != ""
}
