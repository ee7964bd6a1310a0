package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultJWTSecret = "change-this-secret-in-production"

type Config struct {
	// Database; empty means the in-memory store
	DatabaseURL   string `env:"DATABASE_URL"`
	DBSSLMode     string `env:"DB_SSL_MODE" envDefault:"disable"`
	DBSSLRootCert string `env:"DB_SSL_ROOT_CERT"`
	SeedContent   bool   `env:"SEED_CONTENT" envDefault:"false"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-this-secret-in-production"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`

	// Uploads
	MaxUploadSize       int64  `env:"MAX_UPLOAD_SIZE" envDefault:"5242880"`
	UploadDir           string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	PublicBaseURL       string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	UploadDefaultFolder string `env:"UPLOAD_DEFAULT_FOLDER" envDefault:"images"`
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	// Bootstrap admin, created at startup when missing
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"true"`

	// Public site renderer
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	SitePort   string        `env:"SITE_PORT" envDefault:"3000"`
	RedisURL   string        `env:"REDIS_URL"`
	CacheTTL   time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// UseCloudinary reports whether uploads go to Cloudinary instead of local disk.
func (c Config) UseCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

func (c Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

// Load parses the environment. Callers load .env beforehand.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", cfg.MaxUploadSize)
	}
	if !cfg.Development && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set outside development")
	}

	if cfg.DBSSLMode != "disable" && strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		withSSL, err := databaseURLWithSSL(cfg.DatabaseURL, cfg.DBSSLMode, cfg.DBSSLRootCert)
		if err != nil {
			return nil, err
		}
		cfg.DatabaseURL = withSSL
	}

	return cfg, nil
}

// databaseURLWithSSL replaces any ssl parameters in the URL with the
// configured ones.
func databaseURLWithSSL(databaseURL, mode, rootCert string) (string, error) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	query := parsed.Query()
	query.Del("sslrootcert")
	query.Set("sslmode", mode)
	if rootCert != "" {
		query.Set("sslrootcert", rootCert)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
