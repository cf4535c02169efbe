package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Store backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Store    StoreConfig    `koanf:"store"`
	Monitor  MonitorConfig  `koanf:"monitor"`
	Session  SessionConfig  `koanf:"session"`
	UI       UIConfig       `koanf:"ui"`
	Telegram TelegramConfig `koanf:"telegram"`
}

type StoreConfig struct {
	Backend string `koanf:"backend"` // memory or sqlite
	Path    string `koanf:"path"`    // sqlite database file
}

type MonitorConfig struct {
	Interval int `koanf:"interval"` // polling interval in seconds
}

type SessionConfig struct {
	SaveHistory bool   `koanf:"save_history"`
	HistoryFile string `koanf:"history_file"`
}

type UIConfig struct {
	ColoredOutput bool `koanf:"colored_output"`
}

type TelegramConfig struct {
	Enabled  bool   `koanf:"enabled"`
	BotToken string `koanf:"bot_token"`
	ChatID   string `koanf:"chat_id"`
}

// Load builds the configuration from defaults, an optional YAML file, and
// REMINDER_-prefixed environment variables (REMINDER_STORE_BACKEND,
// REMINDER_TELEGRAM_BOT_TOKEN, ...), in that precedence order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("REMINDER_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "REMINDER_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Store.Path = expandPath(cfg.Store.Path)
	cfg.Session.HistoryFile = expandPath(cfg.Session.HistoryFile)

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown store backend: %s (supported: %s, %s)",
			c.Store.Backend, BackendMemory, BackendSQLite)
	}

	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor interval must be positive")
	}

	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" || c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram bot_token and chat_id are required when telegram is enabled")
		}
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
