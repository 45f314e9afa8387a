package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       string
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// CEP directory
	ViaCEPBaseURL string
	ViaCEPTimeout time.Duration
	CEPCacheSize  int
	CEPDebounce   time.Duration
	CEPRateLimit  string // ulule/limiter formatted rate, e.g. "60-M"

	CORSAllowedOrigins []string
	PosthogAPIKey      string

	// MoneyDefaultStrategy is used for inputs that carry no data-money-mode attribute.
	MoneyDefaultStrategy string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "abase-form-kit")
	v.SetDefault("VIACEP_BASE_URL", "https://viacep.com.br")
	v.SetDefault("VIACEP_TIMEOUT", "5s")
	v.SetDefault("CEP_CACHE_SIZE", 1024)
	v.SetDefault("CEP_DEBOUNCE", "500ms")
	v.SetDefault("CEP_RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("MONEY_DEFAULT_STRATEGY", "blur")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.LogLevel = v.GetString("LOG_LEVEL")

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Preferences will be kept in memory.")
	}
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault(v, "JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.ViaCEPBaseURL = v.GetString("VIACEP_BASE_URL")
	cfg.ViaCEPTimeout = durationOrDefault(v, "VIACEP_TIMEOUT", 5*time.Second)
	cfg.CEPCacheSize = v.GetInt("CEP_CACHE_SIZE")
	cfg.CEPDebounce = durationOrDefault(v, "CEP_DEBOUNCE", 500*time.Millisecond)
	cfg.CEPRateLimit = v.GetString("CEP_RATE_LIMIT")

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.MoneyDefaultStrategy = v.GetString("MONEY_DEFAULT_STRATEGY")

	return cfg, nil
}

// durationOrDefault reads a duration such as "60m" or "1h", warning and
// falling back to def when the value is not parseable.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
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
