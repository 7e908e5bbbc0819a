package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadToggles(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		enabled bool
	}{
		{name: "true", value: "true", enabled: true},
		{name: "one", value: "1", enabled: true},
		{name: "false", value: "false", enabled: false},
		{name: "empty", value: "", enabled: false},
		{name: "malformed", value: "yes please", enabled: false},
		{name: "padded", value: " true ", enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENABLE_BOT_ADD_ALERTS", tt.value)
			cfg := Load()
			assert.Equal(t, tt.enabled, cfg.EnableBotAddAlerts)
		})
	}
}

func TestLoadLists(t *testing.T) {
	t.Setenv("ALLOWLIST_DOMAINS", "Discord.com, github.com ,,  cdn.example.org")
	t.Setenv("SUSPICIOUS_DOMAINS", "")

	cfg := Load()

	assert.Equal(t, []string{"discord.com", "github.com", "cdn.example.org"}, cfg.AllowlistDomains)
	assert.Empty(t, cfg.SuspiciousDomains)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ALERT_LOG_PATH", "")
	t.Setenv("BOT_LOG_PATH", "")

	cfg := Load()

	assert.Equal(t, "alerts-log.json", cfg.AlertLogPath)
	assert.Equal(t, "modwatch.log", cfg.BotLogPath)
}
