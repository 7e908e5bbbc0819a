package watchdog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStale(t *testing.T) {
	w := New(time.Minute)
	w.Register("gateway", 50*time.Millisecond)
	w.Register("reactors", time.Hour)

	now := time.Now().Add(time.Second)
	assert.Equal(t, []string{"gateway"}, w.stale(now))

	w.Heartbeat("gateway")
	assert.Empty(t, w.stale(time.Now()))
}

func TestHeartbeatNilReceiver(t *testing.T) {
	var w *Watchdog
	assert.NotPanics(t, func() { w.Heartbeat("anything") })
}

func TestHeartbeatUnknownComponent(t *testing.T) {
	w := New(time.Minute)
	assert.NotPanics(t, func() { w.Heartbeat("unregistered") })
}
