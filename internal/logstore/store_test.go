package logstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-modwatch/internal/models"
)

func TestAppendSequence(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "alerts-log.json"))

	r1 := models.Record{Type: models.RecordBotAdded, GuildID: "g1", BotID: "b1"}
	r2 := models.Record{Type: models.RecordRoleUpdated, GuildID: "g1", RoleID: "r1"}

	require.NoError(t, store.Append(r1))
	require.NoError(t, store.Append(r2))

	records := store.ReadAll()
	require.Len(t, records, 2)
	assert.Equal(t, models.RecordBotAdded, records[0].Type)
	assert.Equal(t, models.RecordRoleUpdated, records[1].Type)
	assert.NotEmpty(t, records[0].TS)
	assert.NotEmpty(t, records[1].TS)
}

func TestAppendRecoversFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts-log.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	store := New(path)
	require.NoError(t, store.Append(models.Record{Type: models.RecordSuspiciousLink, GuildID: "g1"}))

	records := store.ReadAll()
	require.Len(t, records, 1)
	assert.Equal(t, models.RecordSuspiciousLink, records[0].Type)
}

func TestReadAllMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-written.json"))
	assert.Empty(t, store.ReadAll())
}
