package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config global application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Export   ExportConfig   `mapstructure:"export"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	BaseURL      string     `mapstructure:"base_url"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"`
	CORS         CORSConfig `mapstructure:"cors"`
}

// CORSConfig cross-origin settings
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// UpstreamConfig the REST backend every screen reads from and writes to
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig session store
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig session cookie and sign-in settings
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	SignInPath      string        `mapstructure:"signin_path"`
	SignInRateLimit int           `mapstructure:"signin_rate_limit"`
	SignInWindow    time.Duration `mapstructure:"signin_window"`
	Cookie          CookieConfig  `mapstructure:"cookie"`
}

// CookieConfig cookie security attributes
type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
	Domain   string `mapstructure:"domain"`
}

// UploadConfig photo upload validation
type UploadConfig struct {
	MaxBytes     int64    `mapstructure:"max_bytes"`
	AllowedMimes []string `mapstructure:"allowed_mimes"`
}

// ExportConfig spreadsheet export formatting
type ExportConfig struct {
	Timezone   string `mapstructure:"timezone"`
	DateLayout string `mapstructure:"date_layout"`
}

// LogConfig logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration and validates it for the server
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads configuration from .env, the config file and environment variables
// without validating it. Precedence: environment > config file > defaults.
func Read(path string) (*Config, error) {
	// .env is optional; real environment variables are never overwritten.
	_ = godotenv.Load()

	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.max_body_bytes", 8<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("upstream.base_url", "")
	v.SetDefault("upstream.timeout", "30s")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.session_ttl", "12h")
	v.SetDefault("auth.signin_path", "/signin")
	v.SetDefault("auth.signin_rate_limit", 10)
	v.SetDefault("auth.signin_window", "1m")
	v.SetDefault("auth.cookie.name", "sipusaka_session")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.cookie.same_site", "Lax")
	v.SetDefault("auth.cookie.domain", "")

	v.SetDefault("upload.max_bytes", 2<<20)
	v.SetDefault("upload.allowed_mimes", []string{"image/jpeg", "image/png", "image/webp"})

	v.SetDefault("export.timezone", "Asia/Jakarta")
	v.SetDefault("export.date_layout", "02/01/2006")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("SIPUSAKA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("invalid config: auth.jwt_secret must not be empty")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("invalid config: auth.jwt_secret must be at least 16 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("invalid config: upstream.base_url must not be empty")
	}
	return nil
}
