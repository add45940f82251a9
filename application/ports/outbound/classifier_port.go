package outbound

import "context"

// ClassifierPort assigns the top label from the closed real/fake set to a
// piece of text.
type ClassifierPort interface {
	Classify(ctx context.Context, text string) (string, error)
}
