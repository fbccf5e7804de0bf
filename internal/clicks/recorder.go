// Package clicks records visit telemetry off the request path. Events
// are handed to a buffered channel and written by a background
// worker; the response is never delayed and write failures never
// reach the visitor.
package clicks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

//go:generate mockery

// Store persists one click: increments the link's counter and
// last-clicked timestamp and appends the event row.
type Store interface {
	RecordClick(ctx context.Context, ev *domain.ClickEvent) error
}

type Recorder struct {
	store        Store
	logger       *slog.Logger
	cfg          *config.ClicksConfig
	ch           chan *domain.ClickEvent
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(store Store, cfg *config.ClicksConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		store:      store,
		logger:     logger,
		cfg:        cfg,
		ch:         make(chan *domain.ClickEvent, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}
}

// Record enqueues a click without blocking. When the buffer is full
// the event is dropped; a brief undercount beats a slow redirect.
func (r *Recorder) Record(ev *domain.ClickEvent) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case r.ch <- ev:
	default:
		r.logger.Warn("click buffer full, dropping event",
			slog.String("code", ev.Code))
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("click recording disabled")
		return
	}

	r.wg.Add(1)
	go r.consume(ctx)

	r.logger.Info("click recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize))
}

// Close stops the worker after draining buffered events.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) consume(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			r.drain()
			return
		case <-r.shutdownCh:
			r.drain()
			return
		case ev := <-r.ch:
			r.write(ev)
		}
	}
}

func (r *Recorder) drain() {
	for {
		select {
		case ev := <-r.ch:
			r.write(ev)
		default:
			return
		}
	}
}

func (r *Recorder) write(ev *domain.ClickEvent) {
	timeout := time.Duration(r.cfg.WriteTimeout) * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := r.store.RecordClick(ctx, ev); err != nil {
		r.logger.Error("failed to record click",
			slog.String("code", ev.Code),
			slog.String("error", err.Error()))
	}
}
