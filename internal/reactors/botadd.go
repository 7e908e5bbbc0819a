package reactors

import (
	"github.com/bwmarrin/discordgo"

	"go-modwatch/internal/audit"
	"go-modwatch/internal/logging"
	"go-modwatch/internal/models"
	"go-modwatch/internal/notifier"
)

// HandleBotAdd fires for every member arrival and alerts on automated
// accounts only. Every qualifying arrival alerts; there is no suppression.
func (r *Reactors) HandleBotAdd(guildID string, user *discordgo.User) {
	if !r.cfg.EnableBotAddAlerts {
		return
	}
	if !user.Bot {
		return
	}

	actorID := r.resolveActor(guildID, audit.ActionBotAdd)
	logging.Info("Bot %s joined guild %s (added by %s)", user.ID, guildID, orUnknown(actorID))

	r.deliver(notifier.CategoryBotAdded,
		notifier.BotAddedDescription(user.ID, user.Username, actorID))

	r.appendRecord(models.Record{
		Type:    models.RecordBotAdded,
		GuildID: guildID,
		ActorID: actorID,
		BotID:   user.ID,
		BotName: user.Username,
	})
}

func orUnknown(id string) string {
	if id == "" {
		return "unknown"
	}
	return id
}
