package models

// RecordType tags an alert record in the audit file.
type RecordType string

const (
	RecordBotAdded       RecordType = "BOT_ADDED"
	RecordRoleUpdated    RecordType = "ROLE_UPDATED"
	RecordWebhookCreated RecordType = "WEBHOOK_CREATED"
	RecordSuspiciousLink RecordType = "SUSPICIOUS_LINK"
)

// Record is one appended audit entry. Records are immutable once written;
// the store populates TS on append. Category-specific fields are omitted
// from JSON when empty.
type Record struct {
	Type    RecordType `json:"type"`
	GuildID string     `json:"guildId"`
	ActorID string     `json:"actorId,omitempty"`

	// BOT_ADDED
	BotID   string `json:"botId,omitempty"`
	BotName string `json:"botName,omitempty"`

	// ROLE_UPDATED
	RoleID             string `json:"roleId,omitempty"`
	OldName            string `json:"oldName,omitempty"`
	NewName            string `json:"newName,omitempty"`
	NameChanged        bool   `json:"nameChanged,omitempty"`
	PermissionsChanged bool   `json:"permissionsChanged,omitempty"`

	// WEBHOOK_CREATED and SUSPICIOUS_LINK
	ChannelID string `json:"channelId,omitempty"`

	// SUSPICIOUS_LINK
	AuthorID    string   `json:"authorId,omitempty"`
	URLs        []string `json:"urls,omitempty"`
	KeywordFlag bool     `json:"keywordFlag,omitempty"`

	TS string `json:"ts,omitempty"`
}

// SuspiciousHit pairs a matched URL with the reason it was flagged. Hits live
// only for the duration of one message evaluation; they are summarized into
// the alert body and never persisted individually.
type SuspiciousHit struct {
	URL    string
	Reason string
}
