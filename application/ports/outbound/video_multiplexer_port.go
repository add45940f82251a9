package outbound

import "context"

type MuxVideoRequest struct {
	AudioPath    string
	TextFilePath string
	OutputPath   string
}

// VideoMultiplexerPort produces a simple text-overlay video muxed with an
// audio track. Used only by the fallback video path.
type VideoMultiplexerPort interface {
	Mux(ctx context.Context, req MuxVideoRequest) error
}
