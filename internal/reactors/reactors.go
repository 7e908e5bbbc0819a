// Package reactors binds one handler to each watched event type. Reactor
// cores are plain functions of the triggering event, the config, and a
// best-effort audit lookup; the discordgo wiring lives in Register.
package reactors

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	"go-modwatch/internal/audit"
	"go-modwatch/internal/config"
	"go-modwatch/internal/logging"
	"go-modwatch/internal/logstore"
	"go-modwatch/internal/models"
	"go-modwatch/internal/notifier"
	"go-modwatch/internal/watchdog"
)

// RoleState is the name/permissions snapshot the role reactor diffs against.
type RoleState struct {
	Name        string
	Permissions int64
}

type Reactors struct {
	cfg    *config.Config
	audit  audit.Source
	sender notifier.Sender
	store  *logstore.Store
	dog    *watchdog.Watchdog

	// Discord's role-update event carries only the new role; the prior
	// state the platform cache would have given us is kept here instead.
	mu    sync.Mutex
	roles map[string]RoleState
}

func New(cfg *config.Config, source audit.Source, sender notifier.Sender, store *logstore.Store, dog *watchdog.Watchdog) *Reactors {
	return &Reactors{
		cfg:    cfg,
		audit:  source,
		sender: sender,
		store:  store,
		dog:    dog,
		roles:  make(map[string]RoleState),
	}
}

// Register wires the reactors into the session. Call before Connect.
func (r *Reactors) Register(s *discordgo.Session) {
	s.AddHandler(func(_ *discordgo.Session, g *discordgo.GuildCreate) {
		for _, role := range g.Roles {
			r.snapshotRole(g.ID, role)
		}
	})

	s.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildRoleCreate) {
		r.snapshotRole(e.GuildID, e.Role)
	})

	s.AddHandler(func(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
		r.dog.Heartbeat("reactors")
		if m.GuildID == "" || m.User == nil {
			return
		}
		r.HandleBotAdd(m.GuildID, m.User)
	})

	s.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildRoleUpdate) {
		r.dog.Heartbeat("reactors")
		if e.GuildID == "" || e.Role == nil {
			return
		}

		newState := RoleState{Name: e.Role.Name, Permissions: e.Role.Permissions}
		oldState, known := r.swapRole(e.GuildID, e.Role.ID, newState)
		if !known {
			// First sighting; nothing to diff against.
			return
		}
		r.HandleRoleUpdate(e.GuildID, e.Role.ID, oldState, newState)
	})

	s.AddHandler(func(_ *discordgo.Session, e *discordgo.WebhooksUpdate) {
		r.dog.Heartbeat("reactors")
		if e.GuildID == "" {
			return
		}
		r.HandleWebhooksUpdate(e.GuildID, e.ChannelID)
	})

	s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		r.dog.Heartbeat("reactors")
		if m.GuildID == "" || m.Author == nil || m.Author.Bot {
			return
		}
		r.HandleMessage(m.GuildID, m.ChannelID, m.Author.ID, m.Content)
	})
}

func (r *Reactors) snapshotRole(guildID string, role *discordgo.Role) {
	if role == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[guildID+":"+role.ID] = RoleState{Name: role.Name, Permissions: role.Permissions}
}

// swapRole stores the new state and returns the previous one.
func (r *Reactors) swapRole(guildID, roleID string, state RoleState) (RoleState, bool) {
	key := guildID + ":" + roleID
	r.mu.Lock()
	defer r.mu.Unlock()
	old, known := r.roles[key]
	r.roles[key] = state
	return old, known
}

// resolveActor returns the actor of the most recent audit entry of the given
// kind, or "" when none matched or the lookup failed. Lookup failures are an
// operational concern only; the alert still goes out with an Unknown actor.
func (r *Reactors) resolveActor(guildID string, action int) string {
	res, err := r.audit.LatestByAction(guildID, action)
	if err != nil {
		logging.Warn("Audit lookup failed for guild %s action %d: %v", guildID, action, err)
		return ""
	}
	if !res.Found {
		return ""
	}
	return res.Entry.UserID
}

func (r *Reactors) deliver(category notifier.Category, description string) {
	embed := notifier.BuildAlert(category, description)
	if err := r.sender.Send(r.cfg.AlertChannelID, embed); err != nil {
		logging.Warn("Alert delivery failed: %v", err)
	}
}

func (r *Reactors) appendRecord(rec models.Record) {
	if err := r.store.Append(rec); err != nil {
		logging.Warn("Failed to append alert record: %v", err)
	}
}
