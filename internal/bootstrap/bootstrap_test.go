package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Pickem_Go/internal/config"
	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/domain"
	"github.com/osse101/Pickem_Go/internal/event"
	"github.com/osse101/Pickem_Go/internal/metrics"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2026-01-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
	_, err = os.Stat(filepath.Join(dir, "session_2026-01-01_00-00-00.log"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "oldest log removed")
	_, err = os.Stat(filepath.Join(dir, "session_2026-01-12_00-00-00.log"))
	assert.NoError(t, err, "newest log kept")
}

func TestSetupLogger(t *testing.T) {
	cfg := &config.Config{LogDir: filepath.Join(t.TempDir(), "logs"), LogLevel: "debug", LogFormat: "json", ServiceName: "pickem", Environment: "test"}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "startup lines written to the session file")
}

func TestLoggerConfig(t *testing.T) {
	assert.True(t, LoggerConfig(&config.Config{Environment: "dev"}).AddSource)
	assert.False(t, LoggerConfig(&config.Config{Environment: "prod"}).AddSource)
}

func TestRegisterEventHandlers(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, RegisterEventHandlers(bus))

	before := testutil.ToFloat64(metrics.EntriesRejected)
	require.NoError(t, bus.Publish(context.Background(), event.NewEntryRejectedEvent(uuid.New(), "viewer-1", []string{"bad"})))

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EntriesRejected))
}

type stopRecorder struct {
	stopped bool
	err     error
}

func (s *stopRecorder) Stop(ctx context.Context) error {
	s.stopped = true
	return s.err
}

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Ping(ctx context.Context) error { return nil }
func (c *closeRecorder) Close()                         { c.closed = true }

func TestGracefulShutdown(t *testing.T) {
	srv := &stopRecorder{err: errors.New("deadline exceeded")}
	pool := &closeRecorder{}

	GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DBPool: pool})

	assert.True(t, srv.stopped)
	assert.True(t, pool.closed, "pool closes even when the server stop fails")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

// cardImporter satisfies contest.Service for the card import path only
type cardImporter struct {
	contest.Service
	dir    string
	events []*domain.Event
	err    error
}

func (c *cardImporter) ImportEventCardDir(ctx context.Context, dir string) ([]*domain.Event, error) {
	c.dir = dir
	return c.events, c.err
}

func TestImportEventCards(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		svc := &cardImporter{}
		n, err := ImportEventCards(context.Background(), svc, filepath.Join(t.TempDir(), "none"))
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, svc.dir, "service not called")
	})

	t.Run("imported", func(t *testing.T) {
		dir := t.TempDir()
		svc := &cardImporter{events: []*domain.Event{{ID: uuid.New(), Name: "Card"}}}
		n, err := ImportEventCards(context.Background(), svc, dir)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, dir, svc.dir)
	})

	t.Run("failure", func(t *testing.T) {
		svc := &cardImporter{err: domain.ErrInvalidInput}
		_, err := ImportEventCards(context.Background(), svc, t.TempDir())
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
