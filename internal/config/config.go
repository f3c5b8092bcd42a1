// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token   string `yaml:"token"`
	Workers int    `yaml:"workers"` // polling workers
}

type PexelsConfig struct {
	Key     string `yaml:"key"`
	BaseURL string `yaml:"base_url"` // override for tests; defaults to the public API
}

type ChannelConfig struct {
	Handle string `yaml:"handle"` // e.g. @anime_channel
	Name   string `yaml:"name"`   // button label; defaulted when empty
}

type ChannelsConfig struct {
	Main   ChannelConfig `yaml:"main"`
	Backup ChannelConfig `yaml:"backup"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type AdminConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

type DirectoryConfig struct {
	Backend string `yaml:"backend"` // memory | redis
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Config struct {
	Bot       BotConfig       `yaml:"bot"`
	Pexels    PexelsConfig    `yaml:"pexels"`
	Channels  ChannelsConfig  `yaml:"channels"`
	Log       LogConfig       `yaml:"log"`
	Admin     AdminConfig     `yaml:"admin"`
	Directory DirectoryConfig `yaml:"directory"`
	Redis     RedisConfig     `yaml:"redis"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// defaults
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Channels.Main.Name == "" {
		cfg.Channels.Main.Name = "Main Anime Channel"
	}
	if cfg.Channels.Backup.Name == "" {
		cfg.Channels.Backup.Name = "Backup Anime Channel"
	}
	if cfg.Directory.Backend == "" {
		cfg.Directory.Backend = "memory"
	}
	if cfg.Admin.Port == 0 {
		cfg.Admin.Port = 8081
	}

	// Minimal validation
	if cfg.Bot.Token == "" {
		return nil, errors.New("bot.token is required")
	}
	if cfg.Pexels.Key == "" {
		return nil, errors.New("pexels.key is required")
	}
	if cfg.Channels.Main.Handle == "" {
		return nil, errors.New("channels.main.handle is required")
	}
	if cfg.Channels.Backup.Handle == "" {
		return nil, errors.New("channels.backup.handle is required")
	}
	if cfg.Directory.Backend == "redis" && cfg.Redis.URL == "" {
		return nil, errors.New("redis.url is required when directory.backend is redis")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
