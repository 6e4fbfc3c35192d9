// Package config loads process-wide settings once at startup. The resulting
// Config is treated as immutable and passed down explicitly.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort       = "8080"
	defaultDriver     = "sqlite"
	defaultDSN        = "linkhub.db"
	defaultTokenTTL   = "1d"
	defaultLogLevel   = "info"
	defaultCacheTTL   = time.Minute
	defaultMaxOpen    = 10
	defaultReadHeader = 10 * time.Second
	defaultWrite      = 10 * time.Second
	defaultIdle       = 60 * time.Second
)

var ErrMissingSecret = errors.New("auth.jwt_secret (JWT_SECRET) must be set")

type Config struct {
	Port  string
	DB    DBConfig
	Auth  AuthConfig
	Log   LogConfig
	Redis RedisConfig
	HTTP  HTTPConfig
}

type DBConfig struct {
	Driver       string // sqlite | postgres | mysql
	DSN          string
	MaxOpenConns int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type LogConfig struct {
	Level string
}

// RedisConfig configures the public listing cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	// WarmInterval refreshes the cached views on a tick; 0 disables it.
	WarmInterval time.Duration
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// envBindings maps config keys onto the environment variable names the
// deployment already uses.
var envBindings = map[string]string{
	"port":            "PORT",
	"db.driver":       "DB_DRIVER",
	"db.dsn":          "DATABASE_URL",
	"auth.jwt_secret": "JWT_SECRET",
	"auth.token_ttl":  "JWT_EXPIRES_IN",
	"log.level":       "LOG_LEVEL",
	"redis.addr":      "REDIS_ADDR",
	"redis.password":  "REDIS_PASSWORD",
}

// Load reads .env (if present), the optional YAML config file and the
// environment, in increasing precedence. An empty path searches configs/config.yml.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // missing .env is fine outside local dev

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("db.driver", defaultDriver)
	v.SetDefault("db.dsn", defaultDSN)
	v.SetDefault("db.max_open_conns", defaultMaxOpen)
	v.SetDefault("auth.token_ttl", defaultTokenTTL)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", defaultCacheTTL)
	v.SetDefault("redis.warm_interval", 0)
	v.SetDefault("http.read_header_timeout", defaultReadHeader)
	v.SetDefault("http.write_timeout", defaultWrite)
	v.SetDefault("http.idle_timeout", defaultIdle)
}

func fromViper(v *viper.Viper) (*Config, error) {
	ttl, err := ParseTTL(v.GetString("auth.token_ttl"))
	if err != nil {
		return nil, fmt.Errorf("auth.token_ttl: %w", err)
	}

	cfg := &Config{
		Port: v.GetString("port"),
		DB: DBConfig{
			Driver:       strings.ToLower(strings.TrimSpace(v.GetString("db.driver"))),
			DSN:          v.GetString("db.dsn"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			TokenTTL:  ttl,
		},
		Log: LogConfig{Level: strings.ToLower(v.GetString("log.level"))},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),

			WarmInterval: v.GetDuration("redis.warm_interval"),
		},
		HTTP: HTTPConfig{
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
		},
	}
	return cfg, nil
}

// Validate checks settings required to serve traffic. The CLI user commands
// do not need a signing secret, so this is not part of Load.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return ErrMissingSecret
	}
	switch c.DB.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	return nil
}

// ParseTTL accepts Go durations ("12h", "90m") and whole days ("1d", "7d").
func ParseTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = defaultTokenTTL
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("ttl must be positive, got %s", s)
	}
	return d, nil
}
