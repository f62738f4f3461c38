// Package config loads todoboard settings from config.yaml, a .env file and
// environment variables, in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when TODOBOARD_CONFIG is unset.
const DefaultPath = "config.yaml"

type RemoteConfig struct {
	BaseURL    string        `yaml:"base_url" validate:"required,url"`
	FetchLimit int           `yaml:"fetch_limit" validate:"gt=0"`
	Timeout    time.Duration `yaml:"timeout" validate:"gte=0"` // 0 = no timeout
}

type UIConfig struct {
	Title    string        `yaml:"title"`
	Width    int           `yaml:"width" validate:"gt=0"`
	Height   int           `yaml:"height" validate:"gt=0"`
	ErrorTTL time.Duration `yaml:"error_ttl" validate:"gt=0"`
}

type ServerConfig struct {
	Port      string  `yaml:"port" validate:"required,numeric"`
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"` // requests per second, 0 = unlimited
	RateBurst int     `yaml:"rate_burst" validate:"gte=0"`
}

type DBConfig struct {
	DSN      string `yaml:"dsn"` // empty = in-memory store
	MaxConns int32  `yaml:"max_conns" validate:"gte=0"`
}

type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	File        string `yaml:"file"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Remote RemoteConfig `yaml:"remote"`
	UI     UIConfig     `yaml:"ui"`
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			BaseURL:    "https://dummyjson.com",
			FetchLimit: 100,
		},
		UI: UIConfig{
			Title:    "todoboard",
			Width:    900,
			Height:   700,
			ErrorTTL: 3 * time.Second,
		},
		Server: ServerConfig{
			Port:      "8080",
			RateLimit: 20,
			RateBurst: 40,
		},
		DB:  DBConfig{MaxConns: 10},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the config file named by TODOBOARD_CONFIG (or DefaultPath),
// applies environment overrides and validates the result. A missing file is
// not an error.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	path := os.Getenv("TODOBOARD_CONFIG")
	if path == "" {
		path = DefaultPath
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	overrideFromEnv(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes path over the defaults without env overrides or validation.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks struct constraints on cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func overrideFromEnv(cfg *Config) {
	if base := os.Getenv("API_BASE"); base != "" {
		cfg.Remote.BaseURL = base
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if n := os.Getenv("DB_MAX_CONNS"); n != "" {
		if v, err := strconv.Atoi(n); err == nil {
			cfg.DB.MaxConns = int32(v)
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if file := os.Getenv("LOG_FILE"); file != "" {
		cfg.Log.File = file
	}
}
