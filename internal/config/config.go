package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Push     PushConfig     `json:"push"`
	Engine   EngineConfig   `json:"engine"`
	APIKey   string         `json:"api_key,omitempty"`

	// StoreDriver selects the obstacle/user persistence backend:
	// "postgres" (default) or "memory" for local runs without infra.
	StoreDriver string `json:"store_driver"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	AllowedOrigins  []string      `json:"allowed_origins"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// PushConfig describes the external push gateway. The gateway accepts a
// batch of addresses plus a message and answers per-address outcomes.
type PushConfig struct {
	GatewayURL string        `json:"gateway_url"`
	Timeout    time.Duration `json:"timeout"`
	Disabled   bool          `json:"disabled"`
}

// EngineConfig groups the policy constants of the dedup/notification
// engine. Duplicate-detection radius and notification-eligibility radius
// are distinct knobs and must never be conflated.
type EngineConfig struct {
	DuplicateRadiusKm    float64       `json:"duplicate_radius_km"`
	NotificationRadiusKm float64       `json:"notification_radius_km"`
	NotificationMin      int           `json:"notification_min"`
	ResolutionMin        int           `json:"resolution_min"`
	ReaperInterval       time.Duration `json:"reaper_interval"`
	IntentRetryAfter     time.Duration `json:"intent_retry_after"`
	DefaultObstacleTTL   time.Duration `json:"default_obstacle_ttl"`
	CacheTTL             time.Duration `json:"cache_ttl"`
	StoreTimeout         time.Duration `json:"store_timeout"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "traficday_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Push: PushConfig{
			GatewayURL: getEnv("PUSH_GATEWAY_URL", ""),
			Timeout:    getEnvDuration("PUSH_TIMEOUT", 5*time.Second),
			Disabled:   getEnvBool("PUSH_DISABLED", false),
		},
		Engine: EngineConfig{
			DuplicateRadiusKm:    getEnvFloat("DUPLICATE_RADIUS_KM", 0.05),
			NotificationRadiusKm: getEnvFloat("NOTIFICATION_RADIUS_KM", 1.6),
			NotificationMin:      getEnvInt("NOTIFICATION_THRESHOLD", 2),
			ResolutionMin:        getEnvInt("RESOLUTION_THRESHOLD", 5),
			ReaperInterval:       getEnvDuration("REAPER_INTERVAL", 15*time.Minute),
			IntentRetryAfter:     getEnvDuration("INTENT_RETRY_AFTER", 10*time.Minute),
			DefaultObstacleTTL:   getEnvDuration("DEFAULT_OBSTACLE_TTL", 4*time.Hour),
			CacheTTL:             getEnvDuration("OBSTACLE_CACHE_TTL", 30*time.Second),
			StoreTimeout:         getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		},
		APIKey:      getEnv("API_KEY", ""),
		StoreDriver: getEnv("STORE_DRIVER", "postgres"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.StoreDriver != "postgres" && c.StoreDriver != "memory" {
		return errors.New("STORE_DRIVER must be 'postgres' or 'memory'")
	}
	if c.StoreDriver == "postgres" && c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Engine.DuplicateRadiusKm <= 0 || c.Engine.NotificationRadiusKm <= 0 {
		return errors.New("radii must be positive")
	}
	if c.Engine.NotificationMin < 1 || c.Engine.ResolutionMin < 1 {
		return errors.New("thresholds must be at least 1")
	}
	if !c.Push.Disabled && c.Push.GatewayURL == "" {
		return errors.New("PUSH_GATEWAY_URL required unless PUSH_DISABLED=true")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
