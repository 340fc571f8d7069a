package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PGSQL_URL", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/ark")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/ark", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 8*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "ark-backend", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.PasswordResetTTL)
	assert.Equal(t, 168*time.Hour, cfg.RegistrationTokenTTL)
	assert.Equal(t, 5, cfg.LicenseWarningDays)
	assert.Equal(t, StorageLocal, cfg.StorageBackend)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("PASSWORD_RESET_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("FRONTEND_BASE_URL", "https://app.example/")
	t.Setenv("EMAIL_USER", "mailer@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8*time.Hour, cfg.JWTExpiryDuration, "invalid duration falls back to the default")
	assert.Equal(t, 30*time.Minute, cfg.PasswordResetTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://app.example", cfg.FrontendBaseURL)
	assert.Equal(t, "mailer@example.com", cfg.Email.From)
}

func TestLoadConfig_GCSNeedsBucket(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_BACKEND", "gcs")
	t.Setenv("GCS_BUCKET", "")

	_, err := LoadConfig()

	assert.Error(t, err)
}
