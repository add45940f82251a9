package outbound

import "context"

type RenderAvatarRequest struct {
	AudioPath string
	ImagePath string
	ResultDir string
}

// AvatarRendererPort drives the external talking-head generation tool.
// Render blocks until the tool exits and fails on a non-zero exit code.
type AvatarRendererPort interface {
	// Check verifies the tool installation (root directory and entry script).
	Check() error
	Render(ctx context.Context, req RenderAvatarRequest) error
}
