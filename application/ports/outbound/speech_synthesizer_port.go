package outbound

import (
	"context"
	"errors"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// ErrUnavailable marks a speech engine that is not installed or not
// configured, as opposed to one that ran and failed.
var ErrUnavailable = errors.New("speech engine unavailable")

// SpeechSynthesizerPort writes narrated audio for the given text to destPath.
// One implementation is one fallback tier.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, text string, destPath string, channel domain.Channel) error
}
