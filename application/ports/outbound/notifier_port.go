package outbound

import "context"

// NotifierPort pushes a plain-text digest of a finished broadcast to an
// external chat channel. Failures are logged by the caller and never affect
// the run outcome.
type NotifierPort interface {
	PublishDigest(ctx context.Context, digest string) error
}
