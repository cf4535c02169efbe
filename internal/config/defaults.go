package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"store": map[string]interface{}{
			"backend": BackendMemory,
			"path":    "~/.reminder-agent/reminders.db",
		},
		"monitor": map[string]interface{}{
			"interval": 5,
		},
		"session": map[string]interface{}{
			"save_history": true,
			"history_file": "~/.reminder-agent/history.txt",
		},
		"ui": map[string]interface{}{
			"colored_output": true,
		},
		"telegram": map[string]interface{}{
			"enabled":   false,
			"bot_token": "",
			"chat_id":   "",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.reminder-agent/config.yaml"
}
