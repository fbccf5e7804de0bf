package clicks_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shortlink/internal/clicks"
	"shortlink/internal/clicks/mocks"
	"shortlink/internal/config"
	"shortlink/internal/domain"
)

func testConfig() *config.ClicksConfig {
	return &config.ClicksConfig{
		Enabled:      true,
		BufferSize:   16,
		WriteTimeout: 1000,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorder_WritesEvents(t *testing.T) {
	store := mocks.NewMockStore(t)

	var mu sync.Mutex
	var written []string
	done := make(chan struct{}, 8)
	store.EXPECT().RecordClick(mock.Anything, mock.AnythingOfType("*domain.ClickEvent")).RunAndReturn(func(_ context.Context, ev *domain.ClickEvent) error {
		mu.Lock()
		written = append(written, ev.Code)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})

	r := clicks.NewRecorder(store, testConfig(), discardLogger())
	r.Start(context.Background())
	defer r.Close()

	r.Record(&domain.ClickEvent{Code: "abc123"})
	r.Record(&domain.ClickEvent{Code: "def456"})

	for range 2 {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("event never written")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"abc123", "def456"}, written)
}

func TestRecorder_Disabled(t *testing.T) {
	store := mocks.NewMockStore(t)

	cfg := testConfig()
	cfg.Enabled = false

	r := clicks.NewRecorder(store, cfg, discardLogger())
	r.Start(context.Background())

	r.Record(&domain.ClickEvent{Code: "abc123"})
	r.Close()

	store.AssertNotCalled(t, "RecordClick", mock.Anything, mock.Anything)
}

func TestRecorder_DropsWhenFull(t *testing.T) {
	store := mocks.NewMockStore(t)

	cfg := testConfig()
	cfg.BufferSize = 1

	// Never started, so the buffer fills and stays full.
	r := clicks.NewRecorder(store, cfg, discardLogger())

	r.Record(&domain.ClickEvent{Code: "kept"})
	r.Record(&domain.ClickEvent{Code: "dropped"})

	store.AssertNotCalled(t, "RecordClick", mock.Anything, mock.Anything)
}

func TestRecorder_CloseDrains(t *testing.T) {
	store := mocks.NewMockStore(t)

	var mu sync.Mutex
	count := 0
	store.EXPECT().RecordClick(mock.Anything, mock.AnythingOfType("*domain.ClickEvent")).RunAndReturn(func(_ context.Context, _ *domain.ClickEvent) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	r := clicks.NewRecorder(store, testConfig(), discardLogger())

	// Enqueue before the worker runs, then let Close flush everything.
	for range 5 {
		r.Record(&domain.ClickEvent{Code: "abc123"})
	}
	r.Start(context.Background())
	r.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, count)
}

func TestRecorder_WriteErrorDoesNotStopWorker(t *testing.T) {
	store := mocks.NewMockStore(t)

	done := make(chan struct{}, 2)
	store.EXPECT().RecordClick(mock.Anything, mock.AnythingOfType("*domain.ClickEvent")).RunAndReturn(func(_ context.Context, _ *domain.ClickEvent) error {
		done <- struct{}{}
		return assert.AnError
	})

	r := clicks.NewRecorder(store, testConfig(), discardLogger())
	r.Start(context.Background())
	defer r.Close()

	r.Record(&domain.ClickEvent{Code: "abc123"})
	r.Record(&domain.ClickEvent{Code: "def456"})

	for range 2 {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker stopped after a write error")
		}
	}
}
