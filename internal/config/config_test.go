package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.UseDatabase())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadSize)
	assert.Equal(t, "images", cfg.UploadDefaultFolder)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.UseCloudinary())
	assert.False(t, cfg.UseRedisCache())
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")
	t.Setenv("ALLOWED_ORIGINS", "https://clean.org,https://admin.clean.org")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "clean")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, int64(1048576), cfg.MaxUploadSize)
	assert.Equal(t, []string{"https://clean.org", "https://admin.clean.org"}, cfg.AllowedOrigins)
	assert.True(t, cfg.UseCloudinary())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("DEVELOPMENT", "false")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadRejectsBadUploadSize(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRewritesSSLParameters(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://clean@db:5432/clean?sslmode=disable&application_name=api")
	t.Setenv("DB_SSL_MODE", "verify-full")
	t.Setenv("DB_SSL_ROOT_CERT", "/etc/ssl/ca.pem")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DatabaseURL, "sslmode=verify-full")
	assert.Contains(t, cfg.DatabaseURL, "sslrootcert=%2Fetc%2Fssl%2Fca.pem")
	assert.Contains(t, cfg.DatabaseURL, "application_name=api")
	assert.NotContains(t, cfg.DatabaseURL, "sslmode=disable")
}
