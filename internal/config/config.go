package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"aurora-app-go/pkg/logger"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"

	ProfileStoreSupabase = "supabase"
	ProfileStorePostgres = "postgres"
)

type Config struct {
	HTTPPort       string
	Env            string
	AllowedOrigins []string
	Storage        StorageConfig
	DB             DBConfig
	Redis          RedisConfig
	Supabase       SupabaseConfig
	Profile        ProfileConfig
	Billing        BillingConfig
	AuthRateLimit  RateLimitConfig
}

type StorageConfig struct {
	Driver     string
	Namespace  string
	SQLitePath string
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowQuery       time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SupabaseConfig struct {
	URL            string
	PublishableKey string
	JWTSecret      string
	AuthTimeout    time.Duration
	SkipAuth       bool
	MockUserID     string
	MockUserEmail  string
	MockUserName   string
}

type ProfileConfig struct {
	Store    string
	CacheTTL time.Duration
	Timeout  time.Duration
}

type BillingConfig struct {
	PaymentLink   string
	ReturnURL     string
	RedirectDelay time.Duration
	SuccessParam  string
	SuccessValue  string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

func Load(log logger.Logger) (Config, error) {
	err := loadDotEnv(log)
	if err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		Storage: StorageConfig{
			Driver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
			Namespace:  getEnv("STORAGE_NAMESPACE", "aurora"),
			SQLitePath: getEnv("SQLITE_PATH", "aurora.db"),
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "aurora"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			SlowQuery:       getEnvDuration("DB_SLOW_QUERY", 200*time.Millisecond),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Supabase: SupabaseConfig{
			URL:            getEnv("SUPABASE_URL", ""),
			PublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", getEnv("VITE_SUPABASE_PUBLISHABLE_KEY", "")),
			JWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
			AuthTimeout:    getEnvDuration("SUPABASE_AUTH_TIMEOUT", 5*time.Second),
			SkipAuth:       getEnvBool("AUTH_SKIP", false),
			MockUserID:     getEnv("AUTH_MOCK_USER_ID", "local-user"),
			MockUserEmail:  getEnv("AUTH_MOCK_USER_EMAIL", ""),
			MockUserName:   getEnv("AUTH_MOCK_USER_NAME", ""),
		},
		Profile: ProfileConfig{
			Store:    strings.ToLower(getEnv("PROFILE_STORE", ProfileStoreSupabase)),
			CacheTTL: getEnvDuration("PROFILE_CACHE_TTL", time.Minute),
			Timeout:  getEnvDuration("PROFILE_TIMEOUT", 4*time.Second),
		},
		Billing: BillingConfig{
			PaymentLink:   getEnv("BILLING_PAYMENT_LINK", ""),
			ReturnURL:     getEnv("BILLING_RETURN_URL", "http://localhost:5173/"),
			RedirectDelay: getEnvDuration("BILLING_REDIRECT_DELAY", 1500*time.Millisecond),
			SuccessParam:  getEnv("BILLING_SUCCESS_PARAM", "status"),
			SuccessValue:  getEnv("BILLING_SUCCESS_VALUE", "success"),
		},
		AuthRateLimit: RateLimitConfig{
			Max:    getEnvInt("AUTH_RATE_LIMIT", 5),
			Window: getEnvDuration("AUTH_RATE_WINDOW", 15*time.Minute),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LocalMode reports whether requests run as the single device-local user
// instead of being authenticated against Supabase.
func (c Config) LocalMode() bool {
	return c.Supabase.LocalMode()
}

func (c SupabaseConfig) LocalMode() bool {
	return c.SkipAuth || c.URL == ""
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.Profile.Store {
	case ProfileStoreSupabase, ProfileStorePostgres:
	default:
		return fmt.Errorf("unknown PROFILE_STORE %q", c.Profile.Store)
	}
	if strings.TrimSpace(c.Storage.Namespace) == "" {
		return fmt.Errorf("STORAGE_NAMESPACE must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
