package tracking

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeplinker/internal/config"
	"deeplinker/internal/domain"
)

func newTestRecorder(cfg *config.TrackingConfig) *Recorder {
	return NewRecorder(nil, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTrack_Buffered(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(&config.TrackingConfig{Enabled: true, BufferSize: 4})

	r.Track(domain.ClickEvent{LinkID: 1})
	r.Track(domain.ClickEvent{LinkID: 2})

	assert.Len(t, r.clickCh, 2)
}

// Track never blocks: once the buffer is full, further events are dropped.
func TestTrack_DropsWhenFull(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(&config.TrackingConfig{Enabled: true, BufferSize: 2})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			r.Track(domain.ClickEvent{LinkID: uint(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Track blocked on a full buffer")
	}

	assert.Len(t, r.clickCh, 2)
}

func TestTrack_Disabled(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(&config.TrackingConfig{Enabled: false, BufferSize: 4})

	r.Track(domain.ClickEvent{LinkID: 1})

	assert.Empty(t, r.clickCh)
}

func TestTrack_DefaultsTimestamp(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(&config.TrackingConfig{Enabled: true, BufferSize: 4})

	r.Track(domain.ClickEvent{LinkID: 1})

	e := <-r.clickCh
	assert.False(t, e.ClickedAt.IsZero())
}

func TestTrack_KeepsCallerTimestamp(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(&config.TrackingConfig{Enabled: true, BufferSize: 4})

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.Track(domain.ClickEvent{LinkID: 1, ClickedAt: at})

	e := <-r.clickCh
	assert.Equal(t, at, e.ClickedAt)
}

func TestRecordHTTP_DropsWhenFull(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(&config.TrackingConfig{Enabled: true, BufferSize: 1})

	r.RecordHTTP(HTTPMetric{Path: "/r/abc123"})
	r.RecordHTTP(HTTPMetric{Path: "/r/abc123"})

	assert.Len(t, r.httpCh, 1)
}

func TestStartClose_Disabled(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(&config.TrackingConfig{Enabled: false, BufferSize: 4})

	r.Start(context.Background())
	require.NotPanics(t, r.Close)
	require.NotPanics(t, r.Close)
}
