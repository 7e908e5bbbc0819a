package reactors

import (
	"go-modwatch/internal/audit"
	"go-modwatch/internal/logging"
	"go-modwatch/internal/models"
	"go-modwatch/internal/notifier"
)

// HandleWebhooksUpdate reacts to the webhooks-changed signal. The signal
// fires for creations, edits, and deletions alike, so a webhook-create audit
// entry is the only way to tell them apart: no matching entry means the
// firing was unrelated noise and is suppressed. A failed lookup is logged
// operationally instead; both paths end without an alert.
func (r *Reactors) HandleWebhooksUpdate(guildID, channelID string) {
	if !r.cfg.EnableWebhookAlerts {
		return
	}

	res, err := r.audit.LatestByAction(guildID, audit.ActionWebhookCreate)
	if err != nil {
		logging.Warn("Webhook audit lookup failed for guild %s: %v", guildID, err)
		return
	}
	if !res.Found {
		logging.Debug("Webhooks-changed signal in guild %s with no create entry, ignoring", guildID)
		return
	}

	actorID := res.Entry.UserID
	logging.Info("Webhook created in guild %s channel %s by %s", guildID, channelID, orUnknown(actorID))

	r.deliver(notifier.CategoryWebhookCreated,
		notifier.WebhookCreatedDescription(channelID, actorID))

	r.appendRecord(models.Record{
		Type:      models.RecordWebhookCreated,
		GuildID:   guildID,
		ActorID:   actorID,
		ChannelID: channelID,
	})
}
