package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeperRun(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()

	store.Put("stale@x.com", testRecord("stale", now.Add(-25*time.Hour)))
	store.Put("fresh@x.com", testRecord("fresh", now.Add(-time.Hour)))

	sw := &Sweeper{Store: store, MaxAge: 24 * time.Hour, Interval: time.Hour}
	sw.Run()

	_, ok := store.Get("stale@x.com")
	assert.False(t, ok)
	_, ok = store.Get("fresh@x.com")
	assert.True(t, ok)
}

func TestSweeperStartStop(t *testing.T) {
	sw := &Sweeper{Store: NewStore(), MaxAge: 24 * time.Hour, Interval: time.Hour}

	require.NoError(t, sw.Start())
	require.NoError(t, sw.Start(), "second Start is a no-op")
	sw.Stop()
	sw.Stop() // idempotent

	// Restartable after Stop
	require.NoError(t, sw.Start())
	sw.Stop()
}
