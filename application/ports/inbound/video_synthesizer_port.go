package inbound

import (
	"context"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// VideoSynthesizerPort renders the avatar broadcast video for a script and
// returns a URL reference to the produced artifact.
type VideoSynthesizerPort interface {
	SynthesizeVideo(ctx context.Context, script string, channel domain.Channel) (string, error)
	// Ready reports whether the external tool and the channel avatar images
	// are in place; exposed on the status surface.
	Ready() (toolInstalled bool, imagesOK bool)
}

// FallbackVideoPort renders the simpler text-overlay video. It is a separate
// path from the avatar synthesizer and is only invoked when explicitly
// enabled.
type FallbackVideoPort interface {
	SynthesizeFallback(ctx context.Context, script string, channel domain.Channel) (string, error)
}
