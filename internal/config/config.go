package config

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/spf13/viper"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
}

// Enabled reports whether enough of the R2 block is set to sign uploads.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type Config struct {
	DBDriver       string
	DB_URL         string
	Port           string
	JWTSecret      string
	SessionSecret  string
	StateSecret    string // signs Google sign-in state
	SessionTTL     time.Duration
	Environment    string
	LogLevel       string
	RateLimitAuth  string
	MetricsEnabled bool
	TrustProxy     bool // honour X-Forwarded-For / X-Real-IP
	AllowedOrigins []string
	R2             R2Config
	Google         GoogleConfig
}

const (
	defaultJWTSecret     = "not-so-secret-now-is-it?"
	defaultSessionSecret = "change-me-flash-cookie-secret"
	defaultStateSecret   = "change-me-oauth-state-secret"
)

var defaults = map[string]any{
	"DB_DRIVER":            "postgres",
	"DB_URL":               "",
	"PORT":                 "8080",
	"JWT_SECRET":           defaultJWTSecret,
	"SESSION_SECRET":       defaultSessionSecret,
	"OAUTH_STATE_SECRET":   defaultStateSecret,
	"SESSION_TTL":          "24h",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"RATE_LIMIT_AUTH":      "20-M",
	"METRICS_ENABLED":      true,
	"TRUST_PROXY":          false,
	"CORS_ALLOWED_ORIGINS": "http://localhost:5173",
	"R2_REGION":            "auto",
	"GOOGLE_REDIRECT_URL":  "http://localhost:8080/auth/google/callback",
}

// Load reads the .env file (ENV_FILE overrides the path), an optional
// CONFIG_FILE and the process environment, in increasing precedence.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// a missing .env is normal outside development
	_ = godotenv.Load(envFile)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	ttl := v.GetDuration("SESSION_TTL")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	cfg := Config{
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DB_URL:         v.GetString("DB_URL"),
		Port:           v.GetString("PORT"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		SessionSecret:  v.GetString("SESSION_SECRET"),
		StateSecret:    v.GetString("OAUTH_STATE_SECRET"),
		SessionTTL:     ttl,
		Environment:    v.GetString("ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		RateLimitAuth:  v.GetString("RATE_LIMIT_AUTH"),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
		TrustProxy:     v.GetBool("TRUST_PROXY"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		R2: R2Config{
			AccountID:       v.GetString("R2_ACCOUNT_ID"),
			AccessKeyID:     v.GetString("R2_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("R2_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("R2_BUCKET_NAME"),
			Region:          v.GetString("R2_REGION"),
			PublicBaseURL:   v.GetString("R2_PUBLIC_BASE_URL"),
		},
		Google: GoogleConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate refuses to run production with the built-in secrets.
func (c Config) Validate() error {
	if !c.IsProduction() {
		return nil
	}
	var errs []error
	if c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if c.SessionSecret == "" || c.SessionSecret == defaultSessionSecret {
		errs = append(errs, errors.New("SESSION_SECRET must be set in production"))
	}
	if c.Google.ClientID != "" && (c.StateSecret == "" || c.StateSecret == defaultStateSecret) {
		errs = append(errs, errors.New("OAUTH_STATE_SECRET must be set in production when Google sign-in is enabled"))
	}
	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
