package reactors

import (
	"go-modwatch/internal/audit"
	"go-modwatch/internal/logging"
	"go-modwatch/internal/models"
	"go-modwatch/internal/notifier"
)

// HandleRoleUpdate compares the old and new role state and alerts when the
// name or the permission bitmask changed. Identical state is a no-op.
func (r *Reactors) HandleRoleUpdate(guildID, roleID string, old, updated RoleState) {
	if !r.cfg.EnableRoleAlerts {
		return
	}

	nameChanged := old.Name != updated.Name
	permsChanged := old.Permissions != updated.Permissions
	if !nameChanged && !permsChanged {
		return
	}

	actorID := r.resolveActor(guildID, audit.ActionRoleUpdate)
	logging.Info("Role %s updated in guild %s (name=%t perms=%t, by %s)",
		roleID, guildID, nameChanged, permsChanged, orUnknown(actorID))

	r.deliver(notifier.CategoryRoleUpdated,
		notifier.RoleUpdatedDescription(roleID, old.Name, updated.Name, nameChanged, permsChanged, actorID))

	r.appendRecord(models.Record{
		Type:               models.RecordRoleUpdated,
		GuildID:            guildID,
		ActorID:            actorID,
		RoleID:             roleID,
		OldName:            old.Name,
		NewName:            updated.Name,
		NameChanged:        nameChanged,
		PermissionsChanged: permsChanged,
	})
}
