package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Mail         MailConfig         `mapstructure:"mail"`
	Notification NotificationConfig `mapstructure:"notification"`
	Redis        RedisConfig        `mapstructure:"redis"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Log          LogConfig          `mapstructure:"log"`
	// TestMode mirrors the TEST environment flag: sqlite store and log-only mail.
	TestMode bool `mapstructure:"test_mode"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	StaticDir       string        `mapstructure:"static_dir"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	DefaultPageSize int           `mapstructure:"default_page_size"`
	MaxPageSize     int           `mapstructure:"max_page_size"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	URL          string `mapstructure:"url"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	SQLitePath   string `mapstructure:"sqlite_path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type MailConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	From               string `mapstructure:"from"`
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify"`
}

type NotificationConfig struct {
	Workers       int           `mapstructure:"workers"`
	QueueSize     int           `mapstructure:"queue_size"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	StatusTTL     time.Duration `mapstructure:"status_ttl"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type CacheConfig struct {
	MaxAge    int           `mapstructure:"max_age"`
	LookupTTL time.Duration `mapstructure:"lookup_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Env is the platform environment the site was deployed with. Any non-empty
// TEST switches to test mode.
type Env struct {
	Port        int    `envconfig:"PORT"`
	Test        string `envconfig:"TEST"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.static_dir", "./public")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.default_page_size", 6)
	v.SetDefault("server.max_page_size", 100)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "sacrocuore")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.sqlite_path", "./sacroCuoreDB.sqlite")
	v.SetDefault("database.max_open_conns", 10)

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", "noreply@sacrocuore.example")

	v.SetDefault("notification.workers", 2)
	v.SetDefault("notification.queue_size", 100)
	v.SetDefault("notification.retry_attempts", 3)
	v.SetDefault("notification.retry_delay", 2*time.Second)
	v.SetDefault("notification.status_ttl", 24*time.Hour)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 5.0)
	v.SetDefault("rate_limit.burst", 10)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("cache.max_age", 300)
	v.SetDefault("cache.lookup_ttl", 10*time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// LoadConfig reads config.yaml from paths (defaults to ., ./config and
// /app/config), then applies APP_* variables and the platform environment.
// A missing file is not an error.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config", "/app/config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	config.applyEnv(env)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyEnv(env Env) {
	if env.Port > 0 {
		c.Server.Port = env.Port
	}
	if env.DatabaseURL != "" {
		c.Database.URL = env.DatabaseURL
	}
	if env.Test != "" {
		c.TestMode = true
	}
	if c.TestMode {
		c.Database.Driver = "sqlite"
		c.Mail.Enabled = false
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Server.DefaultPageSize <= 0 {
		return fmt.Errorf("server.default_page_size must be greater than 0")
	}
	if c.Server.MaxPageSize < c.Server.DefaultPageSize {
		return fmt.Errorf("server.max_page_size must be at least server.default_page_size")
	}
	if c.Notification.Workers <= 0 {
		return fmt.Errorf("notification.workers must be greater than 0")
	}
	if c.Notification.QueueSize <= 0 {
		return fmt.Errorf("notification.queue_size must be greater than 0")
	}
	if c.Notification.RetryAttempts <= 0 {
		return fmt.Errorf("notification.retry_attempts must be greater than 0")
	}
	if c.Mail.Enabled && c.Mail.Host == "" {
		return fmt.Errorf("mail.host is required when mail is enabled")
	}
	return nil
}
