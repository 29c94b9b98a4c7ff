package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a .env file).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
	AI   AIConfig
	Auth AuthConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig PostgreSQL settings. If DatabaseURL is set it is used as the full
// connection string; otherwise the DSN is built from the individual fields.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns the DSN to use: DatabaseURL when set, otherwise
// the one built by DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding credentials.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig listen settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIConfig settings for the external advisory service. The advisory call is
// best-effort: TimeoutSeconds bounds it and a failure substitutes a fixed
// fallback phrase, it never fails a request transition.
type AIConfig struct {
	GeminiAPIKey   string
	GeminiModel    string
	TimeoutSeconds int
}

// AuthConfig identity settings.
//
// RootUsername/RootPassword/RootDisplayName describe the single undeletable
// organization-wide identity; it is seeded at startup if missing. The two
// password minimums are intentionally separate keys: the legacy behavior had
// 3 for admin-issued staff accounts and 6 for self-registered visitors, and
// rather than silently unifying them each flow reads its own knob.
type AuthConfig struct {
	RootUsername       string
	RootPassword       string
	RootDisplayName    string
	RootUnit           string
	StaffMinPassword   int
	VisitorMinPassword int
}

// Load reads the configuration from environment variables (and optionally a
// .env file in the working directory). Env vars take priority.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "visitgate"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "visitgate"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "visitgate"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AI: AIConfig{
			GeminiAPIKey:   getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:    getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			TimeoutSeconds: getInt(v, "AI_TIMEOUT_SECONDS", 10),
		},
		Auth: AuthConfig{
			RootUsername:       getString(v, "AUTH_ROOT_USERNAME", "0353991356"),
			RootPassword:       getString(v, "AUTH_ROOT_PASSWORD", "123"),
			RootDisplayName:    getString(v, "AUTH_ROOT_DISPLAY_NAME", "BCH TRUNG ĐOÀN"),
			RootUnit:           getString(v, "AUTH_ROOT_UNIT", "Ban Chỉ huy Đơn vị"),
			StaffMinPassword:   getInt(v, "AUTH_STAFF_MIN_PASSWORD", 3),
			VisitorMinPassword: getInt(v, "AUTH_VISITOR_MIN_PASSWORD", 6),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
