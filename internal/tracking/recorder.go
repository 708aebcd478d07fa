// Package tracking is the write-only telemetry sink of the redirect engine.
//
// Click events and HTTP metrics are advisory: sends never block, a full
// buffer drops the event with a warning, and write failures are logged and
// swallowed. At-most-once delivery is the accepted tradeoff for keeping
// telemetry off the redirect latency path.
package tracking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"deeplinker/internal/config"
	"deeplinker/internal/domain"
)

type Recorder struct {
	pool         *pgxpool.Pool
	logger       *slog.Logger
	cfg          *config.TrackingConfig
	clickCh      chan domain.ClickEvent
	httpCh       chan HTTPMetric
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(pool *pgxpool.Pool, cfg *config.TrackingConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		pool:       pool,
		logger:     logger,
		cfg:        cfg,
		clickCh:    make(chan domain.ClickEvent, cfg.BufferSize),
		httpCh:     make(chan HTTPMetric, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}
}

// Track records one redirect attempt. Fire-and-forget: callers never learn
// whether the event was persisted.
func (r *Recorder) Track(e domain.ClickEvent) {
	if !r.cfg.Enabled {
		return
	}
	if e.ClickedAt.IsZero() {
		e.ClickedAt = time.Now()
	}
	select {
	case r.clickCh <- e:
	default:
		r.logger.Warn("click buffer full, dropping event",
			slog.Uint64("link_id", uint64(e.LinkID)))
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case r.httpCh <- m:
	default:
		r.logger.Warn("http metrics buffer full, dropping metric")
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("tracking disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(2)
	go r.flushClicks(ctx, flushInterval)
	go r.flushHTTPMetrics(ctx, flushInterval)

	r.logger.Info("tracking recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) flushClicks(ctx context.Context, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]domain.ClickEvent, 0, r.cfg.BufferSize)

	for {
		select {
		case <-ctx.Done():
			r.drainAndFlushClicks(batch)
			return
		case <-r.shutdownCh:
			r.drainAndFlushClicks(batch)
			return
		case e := <-r.clickCh:
			batch = append(batch, e)
			if len(batch) >= r.cfg.FlushThreshold {
				r.writeClickBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.writeClickBatch(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) drainAndFlushClicks(batch []domain.ClickEvent) {
	for {
		select {
		case e := <-r.clickCh:
			batch = append(batch, e)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				r.writeClickBatch(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (r *Recorder) writeClickBatch(ctx context.Context, batch []domain.ClickEvent) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, e := range batch {
		rows[i] = []any{e.LinkID, e.ClickedAt, e.IPAddress, e.UserAgent, e.Referrer, e.Device, e.App}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"click_events"},
		[]string{"link_id", "clicked_at", "ip_address", "user_agent", "referrer", "device", "app"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		r.logger.Error("failed to write click batch", slog.String("error", err.Error()))
	}
}

func (r *Recorder) flushHTTPMetrics(ctx context.Context, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]HTTPMetric, 0, r.cfg.BufferSize)

	for {
		select {
		case <-ctx.Done():
			r.drainAndFlushHTTP(batch)
			return
		case <-r.shutdownCh:
			r.drainAndFlushHTTP(batch)
			return
		case m := <-r.httpCh:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				r.writeHTTPBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.writeHTTPBatch(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) drainAndFlushHTTP(batch []HTTPMetric) {
	for {
		select {
		case m := <-r.httpCh:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				r.writeHTTPBatch(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (r *Recorder) writeHTTPBatch(ctx context.Context, batch []HTTPMetric) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"http_metrics"},
		[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		r.logger.Error("failed to write http metrics batch", slog.String("error", err.Error()))
	}
}
