package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"go-modwatch/internal/models"
)

// Category selects the title and accent color of an alert embed.
type Category uint8

const (
	CategoryBotAdded Category = iota
	CategoryRoleUpdated
	CategoryWebhookCreated
	CategorySuspiciousLink
)

func (c Category) Title() string {
	switch c {
	case CategoryBotAdded:
		return "🤖 Bot Added"
	case CategoryRoleUpdated:
		return "🛡️ Role Updated"
	case CategoryWebhookCreated:
		return "🪝 Webhook Created"
	case CategorySuspiciousLink:
		return "🔗 Suspicious Link"
	default:
		return "Moderation Alert"
	}
}

func (c Category) Color() int {
	switch c {
	case CategoryBotAdded:
		return 0xED4245
	case CategoryRoleUpdated:
		return 0xFEE75C
	case CategoryWebhookCreated:
		return 0x5865F2
	case CategorySuspiciousLink:
		return 0xEB459E
	default:
		return 0x99AAB5
	}
}

// BuildAlert assembles the embed for one alert. Pure; delivery belongs to
// the sender.
func BuildAlert(category Category, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       category.Title(),
		Description: description,
		Color:       category.Color(),
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "modwatch",
		},
	}
}

// BotAddedDescription renders the BOT_ADDED alert body.
func BotAddedDescription(botID, botName, actorID string) string {
	return fmt.Sprintf("**Bot:** %s — %s\n**Added by:** %s",
		mention(botID), botName, mentionOrUnknown(actorID))
}

// RoleUpdatedDescription renders the ROLE_UPDATED alert body. The name-diff
// line and the permissions warning line appear only for the changes that
// actually happened.
func RoleUpdatedDescription(roleID, oldName, newName string, nameChanged, permsChanged bool, actorID string) string {
	lines := []string{fmt.Sprintf("**Role:** <@&%s>", roleID)}

	if nameChanged {
		lines = append(lines, fmt.Sprintf("**Name:** `%s` → `%s`", oldName, newName))
	}
	if permsChanged {
		lines = append(lines, "⚠️ **Permissions changed**")
	}

	lines = append(lines, fmt.Sprintf("**Updated by:** %s", mentionOrUnknown(actorID)))
	return strings.Join(lines, "\n")
}

// WebhookCreatedDescription renders the WEBHOOK_CREATED alert body.
func WebhookCreatedDescription(channelID, actorID string) string {
	return fmt.Sprintf("**Channel:** <#%s>\n**Created by:** %s",
		channelID, mentionOrUnknown(actorID))
}

// SuspiciousLinkDescription renders the SUSPICIOUS_LINK alert body. With no
// domain hits the body says so explicitly; a keyword-only alert is intended
// low-severity coverage, not an error.
func SuspiciousLinkDescription(authorID, channelID string, hits []models.SuspiciousHit, keywordFlag bool) string {
	lines := []string{
		fmt.Sprintf("**Author:** %s", mention(authorID)),
		fmt.Sprintf("**Channel:** <#%s>", channelID),
	}

	if len(hits) == 0 {
		lines = append(lines, "No URL match. Keyword-only flag.")
	}
	for _, hit := range hits {
		lines = append(lines, fmt.Sprintf("• `%s` — %s", hit.URL, hit.Reason))
	}
	if keywordFlag {
		lines = append(lines, "⚠️ Message text matched a suspicious keyword")
	}

	return strings.Join(lines, "\n")
}

func mention(id string) string {
	return fmt.Sprintf("<@%s> (`%s`)", id, id)
}

func mentionOrUnknown(id string) string {
	if id == "" {
		return "Unknown"
	}
	return mention(id)
}
