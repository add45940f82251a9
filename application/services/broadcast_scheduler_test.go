package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/laiba2005shahzad/BuildWAI/domain"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/adapters"
	"github.com/laiba2005shahzad/BuildWAI/mock"
)

type recordingOrchestrator struct {
	mu       sync.Mutex
	channels []domain.Channel
	err      error
}

func (r *recordingOrchestrator) RunChannel(ctx context.Context, channel domain.Channel) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels = append(r.channels, channel)
	return "", r.err
}

func TestBroadcastScheduler_RunAllCoversEveryChannel(t *testing.T) {
	t.Parallel()

	orchestrator := &recordingOrchestrator{}
	scheduler := NewBroadcastScheduler(adapters.NewZerologWrapper(), mock.GoDispatcher{}, orchestrator, time.Hour)

	scheduler.RunAll(context.Background())

	orchestrator.mu.Lock()
	defer orchestrator.mu.Unlock()
	if len(orchestrator.channels) != len(domain.Channels) {
		t.Fatalf("expected %d channel runs, got %d", len(domain.Channels), len(orchestrator.channels))
	}
	seen := make(map[domain.Channel]bool, len(orchestrator.channels))
	for _, channel := range orchestrator.channels {
		seen[channel] = true
	}
	for _, channel := range domain.Channels {
		if !seen[channel] {
			t.Fatalf("channel %s never ran", channel)
		}
	}
}

func TestBroadcastScheduler_RunAllSurvivesFailures(t *testing.T) {
	t.Parallel()

	orchestrator := &recordingOrchestrator{err: context.DeadlineExceeded}
	scheduler := NewBroadcastScheduler(adapters.NewZerologWrapper(), mock.GoDispatcher{}, orchestrator, time.Hour)

	// RunAll waits for all runs and must return even when every run errors.
	scheduler.RunAll(context.Background())
}

func TestBroadcastScheduler_StartStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	scheduler := NewBroadcastScheduler(adapters.NewZerologWrapper(), mock.GoDispatcher{}, &recordingOrchestrator{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
