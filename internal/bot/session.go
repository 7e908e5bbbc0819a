package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"go-modwatch/internal/logging"
)

// Session wraps the Discord gateway connection. Handlers must be registered
// before Connect so no event is dropped during startup.
type Session struct {
	discord *discordgo.Session
}

func New(token string) (*Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildWebhooks |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return &Session{discord: dg}, nil
}

// Discord exposes the underlying session for handler registration and sends.
func (s *Session) Discord() *discordgo.Session {
	return s.discord
}

func (s *Session) AddHandler(handler interface{}) {
	s.discord.AddHandler(handler)
}

func (s *Session) Connect() error {
	if err := s.discord.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if s.discord.State.User != nil {
		logging.Info("Connected as %s (%s)", s.discord.State.User.Username, s.discord.State.User.ID)
	}
	return nil
}

func (s *Session) Close() error {
	if s.discord != nil {
		return s.discord.Close()
	}
	return nil
}
