package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                string
	MongoURI            string
	MongoDBName         string
	MongoTransactions   bool
	JWTSecret           string
	RedisURL            string
	VideoCacheTTL       time.Duration
	MediaHostProvider   string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
	S3AccessKey         string
	S3SecretKey         string
	S3Bucket            string
	S3Region            string
	S3Endpoint          string
	S3PublicBaseURL     string
	RateLimitPerSecond  float64
	ContextTimeout      time.Duration
	ReconcileInterval   time.Duration
	SagaStaleAfter      time.Duration
	LogLevel            string
	LogFormat           string
	MaxUploadBytes      int64
	MaxPageSize         int
	AllowedOrigins      []string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		MongoURI:            getEnv("MONGODB_URI", ""),
		MongoDBName:         getEnv("MONGODB_DB_NAME", "vidtube"),
		MongoTransactions:   getEnvAsBool("MONGODB_TRANSACTIONS", false),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		VideoCacheTTL:       time.Second * time.Duration(getEnvAsInt("VIDEO_CACHE_TTL_SECONDS", 60)),
		MediaHostProvider:   getEnv("MEDIA_HOST_PROVIDER", "cloudinary"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", ""),
		S3AccessKey:         getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:         getEnv("S3_SECRET_KEY", ""),
		S3Bucket:            getEnv("S3_BUCKET", ""),
		S3Region:            getEnv("S3_REGION", "auto"),
		S3Endpoint:          getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL:     getEnv("S3_PUBLIC_BASE_URL", ""),
		RateLimitPerSecond:  getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		ContextTimeout:      time.Second * time.Duration(getEnvAsInt("CONTEXT_TIMEOUT_SECONDS", 30)),
		ReconcileInterval:   time.Second * time.Duration(getEnvAsInt("RECONCILE_INTERVAL_SECONDS", 60)),
		SagaStaleAfter:      time.Minute * time.Duration(getEnvAsInt("SAGA_STALE_AFTER_MINUTES", 30)),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		MaxUploadBytes:      int64(getEnvAsInt("MAX_UPLOAD_MB", 200)) << 20,
		MaxPageSize:         getEnvAsInt("MAX_PAGE_SIZE", 100),
		AllowedOrigins:      getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}
}

// check if Config implements the IConfigProvider
var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetMaxUploadBytes returns the largest accepted upload in bytes.
func (c *Config) GetMaxUploadBytes() int64 {
	return c.MaxUploadBytes
}

// GetMaxPageSize returns the largest accepted page limit.
func (c *Config) GetMaxPageSize() int {
	return c.MaxPageSize
}

// GetReconcileInterval returns how often counters are reconciled.
func (c *Config) GetReconcileInterval() time.Duration {
	return c.ReconcileInterval
}

// GetSagaStaleAfter returns how long a publication may sit in a non-terminal state.
func (c *Config) GetSagaStaleAfter() time.Duration {
	return c.SagaStaleAfter
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

func getEnvAsList(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
