package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func NewConfigRepository(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetEnvPrefix("irtrack")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("log_level", "info")
	v.SetDefault("draft_cache_ttl", time.Hour)
	v.SetDefault("timezone", "UTC")

	// 設定ファイルは任意
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !isConfigNotFound(err) {
			return nil, fmt.Errorf("read config error: %w", err)
		}
		slog.Debug("config file not found, using defaults", slog.String("path", path))
	}

	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	valid := validator.New()
	if err = valid.Struct(c); err != nil {
		return nil, fmt.Errorf("validate config error: %w", err)
	}

	return &c, nil
}

func isConfigNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

type Config struct {
	LogLevel      string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	DraftCacheTTL time.Duration `mapstructure:"draft_cache_ttl" validate:"gte=0"`
	Timezone      string        `mapstructure:"timezone" validate:"required"`
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Location は表示用のタイムゾーン。不正な値はUTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
