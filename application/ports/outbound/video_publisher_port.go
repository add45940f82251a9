package outbound

import "context"

type PublishVideoRequest struct {
	LocalPath string
	Key       string
}

// VideoPublisherPort uploads a finished video to remote storage and returns
// its public URL.
type VideoPublisherPort interface {
	Publish(ctx context.Context, req PublishVideoRequest) (string, error)
}
