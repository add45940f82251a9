package mock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type FakeSpeech struct {
	// Unavailable makes Synthesize fail with outbound.ErrUnavailable.
	Unavailable bool
	// Err is returned as-is when set.
	Err error
	// Payload is written to destPath; an empty (non-nil would still write)
	// payload produces a zero-byte file.
	Payload []byte
	Calls   int
}

func (f *FakeSpeech) Synthesize(ctx context.Context, text string, destPath string, channel domain.Channel) error {
	f.Calls++
	if f.Unavailable {
		return outbound.ErrUnavailable
	}
	if f.Err != nil {
		return f.Err
	}
	return os.WriteFile(destPath, f.Payload, 0o644)
}

type FakeRenderer struct {
	CheckErr  error
	RenderErr error
	// VideoName, when set, is the file written into the result directory on
	// a successful render.
	VideoName string
	LastReq   outbound.RenderAvatarRequest
	Calls     int
}

func (f *FakeRenderer) Check() error {
	return f.CheckErr
}

func (f *FakeRenderer) Render(ctx context.Context, req outbound.RenderAvatarRequest) error {
	f.Calls++
	f.LastReq = req
	if f.RenderErr != nil {
		return f.RenderErr
	}
	if f.VideoName != "" {
		return os.WriteFile(filepath.Join(req.ResultDir, f.VideoName), []byte("video"), 0o644)
	}
	return nil
}

type FakeMuxer struct {
	Err     error
	LastReq outbound.MuxVideoRequest
}

func (f *FakeMuxer) Mux(ctx context.Context, req outbound.MuxVideoRequest) error {
	f.LastReq = req
	if f.Err != nil {
		return f.Err
	}
	return os.WriteFile(req.OutputPath, []byte("video"), 0o644)
}

type FakePublisher struct {
	URL string
	Err error
}

func (f *FakePublisher) Publish(ctx context.Context, req outbound.PublishVideoRequest) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.URL, nil
}

type FakeNotifier struct {
	Digests []string
	Err     error
}

func (f *FakeNotifier) PublishDigest(ctx context.Context, digest string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Digests = append(f.Digests, digest)
	return nil
}

// SyncDispatcher runs submitted tasks inline; tests use it to keep pipeline
// ordering deterministic.
type SyncDispatcher struct{}

func (SyncDispatcher) Submit(task func()) error {
	if task == nil {
		return fmt.Errorf("nil task")
	}
	task()
	return nil
}

// GoDispatcher runs every task on its own goroutine, for code that fans in
// channels and would deadlock on an inline dispatcher.
type GoDispatcher struct{}

func (GoDispatcher) Submit(task func()) error {
	if task == nil {
		return fmt.Errorf("nil task")
	}
	go task()
	return nil
}
