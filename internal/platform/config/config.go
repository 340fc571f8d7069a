package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned when no token-signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable must be set")

// StorageBackend names the blob store implementation.
type StorageBackend string

const (
	StorageLocal StorageBackend = "local"
	StorageGCS   StorageBackend = "gcs"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	PasswordResetTTL     time.Duration
	RegistrationTokenTTL time.Duration
	LicenseWarningDays   int

	FrontendBaseURL    string
	PublicBaseURL      string
	CORSAllowedOrigins []string

	Email EmailConfig

	StorageBackend     StorageBackend
	UploadDir          string
	GCSBucket          string
	GCSCredentialsFile string
	MaxUploadBytes     int64

	LoginRateLimit string
	MetricsEnabled bool

	AdminEmail    string
	AdminPassword string
}

// EmailConfig holds the outbound SMTP settings.
type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports whether enough is configured to send mail.
func (e EmailConfig) Enabled() bool {
	return e.Host != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "8h")
	v.SetDefault("JWT_ISSUER", "ark-backend")
	v.SetDefault("PASSWORD_RESET_TTL", "1h")
	v.SetDefault("REGISTRATION_TOKEN_TTL", "168h")
	v.SetDefault("LICENSE_WARNING_DAYS", 5)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("EMAIL_HOST", "")
	v.SetDefault("EMAIL_PORT", 587)
	v.SetDefault("EMAIL_USER", "")
	v.SetDefault("EMAIL_PASS", "")
	v.SetDefault("EMAIL_FROM", "")
	v.SetDefault("STORAGE_BACKEND", string(StorageLocal))
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("GCS_BUCKET", "")
	v.SetDefault("GCS_CREDENTIALS_FILE", "")
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = v.GetString("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	cfg.Port = v.GetString("PORT")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTExpiryDuration = durationOrDefault(v, "JWT_EXPIRY_DURATION", 8*time.Hour)
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	cfg.PasswordResetTTL = durationOrDefault(v, "PASSWORD_RESET_TTL", time.Hour)
	cfg.RegistrationTokenTTL = durationOrDefault(v, "REGISTRATION_TOKEN_TTL", 7*24*time.Hour)

	cfg.LicenseWarningDays = v.GetInt("LICENSE_WARNING_DAYS")
	if cfg.LicenseWarningDays < 0 {
		slog.Warn("Invalid LICENSE_WARNING_DAYS, defaulting to 5", slog.Int("value", cfg.LicenseWarningDays))
		cfg.LicenseWarningDays = 5
	}

	cfg.FrontendBaseURL = strings.TrimRight(v.GetString("FRONTEND_BASE_URL"), "/")
	cfg.PublicBaseURL = strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.Email = EmailConfig{
		Host:     v.GetString("EMAIL_HOST"),
		Port:     v.GetInt("EMAIL_PORT"),
		User:     v.GetString("EMAIL_USER"),
		Password: v.GetString("EMAIL_PASS"),
		From:     v.GetString("EMAIL_FROM"),
	}
	if cfg.Email.From == "" {
		cfg.Email.From = cfg.Email.User
	}
	if !cfg.Email.Enabled() {
		slog.Warn("EMAIL_HOST not set. Password reset mails will not be delivered.")
	}

	cfg.StorageBackend = StorageBackend(strings.ToLower(v.GetString("STORAGE_BACKEND")))
	switch cfg.StorageBackend {
	case StorageLocal, StorageGCS:
	default:
		slog.Warn("Unknown STORAGE_BACKEND, defaulting to local", slog.String("value", string(cfg.StorageBackend)))
		cfg.StorageBackend = StorageLocal
	}
	cfg.UploadDir = v.GetString("UPLOAD_DIR")
	cfg.GCSBucket = v.GetString("GCS_BUCKET")
	cfg.GCSCredentialsFile = v.GetString("GCS_CREDENTIALS_FILE")
	if cfg.StorageBackend == StorageGCS && cfg.GCSBucket == "" {
		return nil, errors.New("GCS_BUCKET must be set when STORAGE_BACKEND is gcs")
	}
	cfg.MaxUploadBytes = v.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}

	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.MetricsEnabled = v.GetBool("METRICS_ENABLED")

	cfg.AdminEmail = strings.TrimSpace(v.GetString("ADMIN_EMAIL"))
	cfg.AdminPassword = v.GetString("ADMIN_PASSWORD")

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.String("default", def.String()))
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
