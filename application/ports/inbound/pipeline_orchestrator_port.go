package inbound

import (
	"context"
	"errors"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// ErrChannelBusy is returned when a run is requested for a channel that
// already has a run in flight. The trigger is rejected, not queued.
var ErrChannelBusy = errors.New("channel run already in flight")

// PipelineOrchestratorPort drives one full ingest-to-commit run for a
// channel. The returned URL is empty when the run short-circuited on an
// empty stage or when video synthesis failed after a successful commit.
type PipelineOrchestratorPort interface {
	RunChannel(ctx context.Context, channel domain.Channel) (string, error)
}
