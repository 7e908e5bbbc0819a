package notifier

import (
	"github.com/bwmarrin/discordgo"
)

// Sender delivers a formatted alert to a channel. Reactors depend on this
// interface so tests can capture embeds without a gateway connection.
type Sender interface {
	Send(channelID string, embed *discordgo.MessageEmbed) error
}

// DiscordSender posts embeds through the live session.
type DiscordSender struct {
	session *discordgo.Session
}

func NewDiscordSender(session *discordgo.Session) *DiscordSender {
	return &DiscordSender{session: session}
}

// Send posts the embed. An unconfigured channel makes delivery a no-op;
// the caller already logged the alert condition.
func (d *DiscordSender) Send(channelID string, embed *discordgo.MessageEmbed) error {
	if channelID == "" {
		return nil
	}
	_, err := d.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}
