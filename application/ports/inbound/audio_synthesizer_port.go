package inbound

import (
	"context"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// AudioSynthesizerPort produces a playable audio file at destPath from script
// text, walking the configured fallback tiers.
type AudioSynthesizerPort interface {
	Synthesize(ctx context.Context, text string, destPath string, channel domain.Channel) error
}
