package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	App       AppConfig
	Server    ServerConfig
	DB        DBConfig
	Mongo     MongoConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Retry     RetryConfig
}

type AppConfig struct {
	Env string `envconfig:"APP_ENV" default:"development"`
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type MongoConfig struct {
	URI      string `envconfig:"MONGODB_URI" default:""`
	Database string `envconfig:"MONGODB_DATABASE" default:"qr_loyalty"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	// Secret signs both access tokens and QR payload signatures.
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// RateLimitConfig selects the counter-store backend and the default
// attempt budget. Per-scan-type overrides come from OverridesFile when set.
type RateLimitConfig struct {
	Backend         string        `envconfig:"RATE_LIMIT_BACKEND" default:"memory"`
	MaxAttempts     int           `envconfig:"RATE_LIMIT_MAX_ATTEMPTS" default:"10"`
	Window          time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	Block           time.Duration `envconfig:"RATE_LIMIT_BLOCK" default:"5m"`
	OverridesFile   string        `envconfig:"RATE_LIMIT_OVERRIDES_FILE" default:""`
	CleanupInterval time.Duration `envconfig:"RATE_LIMIT_CLEANUP_INTERVAL" default:"10m"`
}

type RetryConfig struct {
	MaxAttempts      int           `envconfig:"RETRY_MAX_ATTEMPTS" default:"3"`
	BaseBackoff      time.Duration `envconfig:"RETRY_BASE_BACKOFF" default:"100ms"`
	BreakerThreshold int           `envconfig:"BREAKER_FAILURE_THRESHOLD" default:"5"`
	BreakerWindow    time.Duration `envconfig:"BREAKER_WINDOW" default:"30s"`
	BreakerCooldown  time.Duration `envconfig:"BREAKER_COOLDOWN" default:"15s"`
}

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.RateLimit.Backend {
	case BackendMemory, BackendPostgres, BackendMongo:
	default:
		return fmt.Errorf("unknown rate limit backend: %q", c.RateLimit.Backend)
	}
	// The in-memory store is a single-process map; each instance would
	// track its own counters and the limit would not hold fleet-wide.
	if c.App.IsProduction() && c.RateLimit.Backend == BackendMemory {
		return fmt.Errorf("rate limit backend %q is not safe for production; set RATE_LIMIT_BACKEND to %q or %q",
			BackendMemory, BackendPostgres, BackendMongo)
	}
	if c.RateLimit.Backend == BackendMongo && c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required when RATE_LIMIT_BACKEND is %q", BackendMongo)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Env: "test",
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		RateLimit: RateLimitConfig{
			Backend:         BackendMemory,
			MaxAttempts:     10,
			Window:          time.Minute,
			Block:           5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Retry: RetryConfig{
			MaxAttempts:      3,
			BaseBackoff:      time.Millisecond,
			BreakerThreshold: 5,
			BreakerWindow:    30 * time.Second,
			BreakerCooldown:  15 * time.Second,
		},
	}
}
