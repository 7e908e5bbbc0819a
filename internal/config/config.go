package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is loaded once at startup and passed by reference into every
// component. A missing or malformed field disables the feature it controls;
// nothing here is fatal except the absent bot token, which main checks.
type Config struct {
	Token          string
	AlertChannelID string

	EnableBotAddAlerts  bool
	EnableRoleAlerts    bool
	EnableWebhookAlerts bool
	EnableLinkAlerts    bool

	AllowlistDomains   []string
	SuspiciousDomains  []string
	SuspiciousKeywords []string

	AlertLogPath string
	BotLogPath   string
}

// Load reads the full configuration from the process environment.
func Load() *Config {
	return &Config{
		Token:          os.Getenv("DISCORD_TOKEN"),
		AlertChannelID: os.Getenv("ALERT_CHANNEL_ID"),

		EnableBotAddAlerts:  parseBool(os.Getenv("ENABLE_BOT_ADD_ALERTS")),
		EnableRoleAlerts:    parseBool(os.Getenv("ENABLE_ROLE_ALERTS")),
		EnableWebhookAlerts: parseBool(os.Getenv("ENABLE_WEBHOOK_ALERTS")),
		EnableLinkAlerts:    parseBool(os.Getenv("ENABLE_LINK_ALERTS")),

		AllowlistDomains:   parseList(os.Getenv("ALLOWLIST_DOMAINS")),
		SuspiciousDomains:  parseList(os.Getenv("SUSPICIOUS_DOMAINS")),
		SuspiciousKeywords: parseList(os.Getenv("SUSPICIOUS_KEYWORDS")),

		AlertLogPath: orDefault(os.Getenv("ALERT_LOG_PATH"), "alerts-log.json"),
		BotLogPath:   orDefault(os.Getenv("BOT_LOG_PATH"), "modwatch.log"),
	}
}

// parseBool treats anything unparseable as false, so a typo in a toggle
// disables the feature instead of crashing the process.
func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return v
}

// parseList splits a comma-separated value, trimming whitespace and dropping
// empty segments. Entries are lowercased; all matching is case-insensitive.
func parseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
