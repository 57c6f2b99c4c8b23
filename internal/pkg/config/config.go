package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Scheduling SchedulingConfig
	Horizon    HorizonConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// SchedulingConfig holds the engine's tunables. Values from SCHEDULING_CONFIG_FILE override env.
type SchedulingConfig struct {
	SlotGranularity    time.Duration `envconfig:"SCHEDULING_SLOT_GRANULARITY" default:"15m" yaml:"slot_granularity"`
	MaxMaterializeDays int           `envconfig:"SCHEDULING_MAX_MATERIALIZE_DAYS" default:"366" yaml:"max_materialize_days"`
	IdempotencyTTL     time.Duration `envconfig:"SCHEDULING_IDEMPOTENCY_TTL" default:"24h" yaml:"idempotency_ttl"`
	DefaultCapacity    int           `envconfig:"SCHEDULING_DEFAULT_CAPACITY" default:"1" yaml:"default_capacity"`
	ConfigFile         string        `envconfig:"SCHEDULING_CONFIG_FILE" yaml:"-"`
}

// HorizonConfig drives cmd/horizon, which keeps every business materialized a fixed number of days ahead.
type HorizonConfig struct {
	Schedule   string `envconfig:"HORIZON_SCHEDULE" default:"0 2 * * *"`
	Days       int    `envconfig:"HORIZON_DAYS" default:"30"`
	RunOnStart bool   `envconfig:"HORIZON_RUN_ON_START" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// GranularityMinutes is the slot step in whole minutes.
func (c SchedulingConfig) GranularityMinutes() int {
	return int(c.SlotGranularity / time.Minute)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Scheduling.ConfigFile != "" {
		if err := cfg.Scheduling.ApplyFile(cfg.Scheduling.ConfigFile); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Scheduling.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Horizon.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func DefaultSchedulingConfig() SchedulingConfig {
	return SchedulingConfig{
		SlotGranularity:    15 * time.Minute,
		MaxMaterializeDays: 366,
		IdempotencyTTL:     24 * time.Hour,
		DefaultCapacity:    1,
	}
}

func NewTestConfig() Config {
	return Config{
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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Scheduling: DefaultSchedulingConfig(),
		Horizon: HorizonConfig{
			Schedule: "0 2 * * *",
			Days:     30,
		},
	}
}
