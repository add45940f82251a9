package services

import (
	"context"
	"time"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/channel_utils"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type broadcastScheduler struct {
	logger       outbound.LoggerPort
	workerPool   outbound.TaskDispatcher
	orchestrator inbound.PipelineOrchestratorPort
	interval     time.Duration
}

// NewBroadcastScheduler fires a full two-channel run at a fixed interval.
// It does not track in-flight runs; overlap with on-demand triggers is
// resolved by the orchestrator's per-channel single-flight.
func NewBroadcastScheduler(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	orchestrator inbound.PipelineOrchestratorPort, interval time.Duration) *broadcastScheduler {
	return &broadcastScheduler{
		logger:       logger,
		workerPool:   workerPool,
		orchestrator: orchestrator,
		interval:     interval,
	}
}

// Start blocks until ctx is done; run it on the worker pool.
func (s *broadcastScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.logger.Info("Running scheduled news update")
			s.runAll(ctx)
		}
	}
}

// RunAll triggers one run per channel on the worker pool and waits for both,
// logging per-channel failures.
func (s *broadcastScheduler) RunAll(ctx context.Context) {
	s.runAll(ctx)
}

func (s *broadcastScheduler) runAll(ctx context.Context) {
	errChs := make([]<-chan error, 0, len(domain.Channels))

	for _, channel := range domain.Channels {
		ch := channel
		errCh := make(chan error, 1)
		errChs = append(errChs, errCh)

		err := s.workerPool.Submit(func() {
			defer close(errCh)
			if _, err := s.orchestrator.RunChannel(ctx, ch); err != nil {
				errCh <- err
			}
		})
		if err != nil {
			errCh <- err
			close(errCh)
		}
	}

	merged, err := channel_utils.MergeChannels(s.workerPool, errChs...)
	if err != nil {
		s.logger.Error(err, "Failed to merge scheduler error channels")
		return
	}

	for err := range merged {
		s.logger.Error(err, "Scheduled channel run failed")
	}
}
