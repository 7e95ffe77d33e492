package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Pjt727/classwatch/collection/services/quacs"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	SourceURL   string        `mapstructure:"source_url" validate:"required,url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout" validate:"gt=0"`
	MetricsFile string        `mapstructure:"metrics_file"`
	Log         LogConfig     `mapstructure:"log"`
	Cache       CacheConfig   `mapstructure:"cache"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug io info warn error"`
	// json log lines are appended here when set
	File string `mapstructure:"file"`
}

type CacheConfig struct {
	Backend       string `mapstructure:"backend" validate:"oneof=file postgres redis"`
	Dir           string `mapstructure:"dir" validate:"required_if=Backend file"`
	DatabaseURL   string `mapstructure:"database_url" validate:"required_if=Backend postgres"`
	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" validate:"gte=0"`
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".classwatch"
	}
	return filepath.Join(dir, "classwatch")
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("source_url", quacs.DefaultSourceURL)
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("metrics_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("cache.backend", BackendFile)
	v.SetDefault("cache.dir", defaultCacheDir())
	v.SetDefault("cache.database_url", "")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
}

// Load reads .env (if present), an optional config file, then CLASSWATCH_*
// environment variables. Flags bound to v by the caller win over all of them.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix("CLASSWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// same names the rest of our services use
	_ = v.BindEnv("cache.database_url", "CLASSWATCH_CACHE_DATABASE_URL", "DB_CONN")
	_ = v.BindEnv("cache.redis_addr", "CLASSWATCH_CACHE_REDIS_ADDR", "REDIS_ADDR")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
