package outbound

import "context"

// SummarizerPort maps article text to a short abstractive summary.
type SummarizerPort interface {
	Summarize(ctx context.Context, text string) (string, error)
}
