package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
)

type sadTalkerRenderer struct {
	logger       outbound.LoggerPort
	avatarConfig *config.AvatarConfig
}

// NewSadTalkerRenderer invokes the SadTalker batch tool. The tool expects to
// run from its own root with relative asset paths; instead of mutating the
// process working directory we pass absolute paths and set the child's
// working directory on the command, so concurrent channel runs never race on
// shared process state.
func NewSadTalkerRenderer(logger outbound.LoggerPort, avatarConfig *config.AvatarConfig) outbound.AvatarRendererPort {
	return &sadTalkerRenderer{
		logger:       logger,
		avatarConfig: avatarConfig,
	}
}

func (r *sadTalkerRenderer) Check() error {
	if _, err := os.Stat(r.avatarConfig.ToolRoot); err != nil {
		return fmt.Errorf("SadTalker directory not found at %s: %w", r.avatarConfig.ToolRoot, err)
	}
	if _, err := os.Stat(r.avatarConfig.EntryScript()); err != nil {
		return fmt.Errorf("SadTalker inference.py not found at %s: %w", r.avatarConfig.EntryScript(), err)
	}
	return nil
}

func (r *sadTalkerRenderer) Render(ctx context.Context, req outbound.RenderAvatarRequest) error {
	args := []string{
		r.avatarConfig.EntryScript(),
		"--driven_audio", req.AudioPath,
		"--source_image", req.ImagePath,
		"--result_dir", req.ResultDir,
		"--enhancer", "gfpgan",
		"--still",
		"--preprocess", "full",
		"--expression_scale", "1.0",
	}

	cmd := exec.CommandContext(ctx, r.avatarConfig.PythonBin, args...)
	cmd.Dir = r.avatarConfig.ToolRoot

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.InfoWithFields("Running SadTalker", map[string]interface{}{
		"command": r.avatarConfig.PythonBin + " " + strings.Join(args, " "),
	})

	err := cmd.Run()

	// The tool's full output is kept in the logs for model-specific
	// diagnosis; it is never surfaced to API callers.
	r.logger.DebugWithFields("SadTalker stdout", map[string]interface{}{"output": stdout.String()})
	if stderr.Len() > 0 {
		r.logger.ErrorWithFields(nil, "SadTalker stderr", map[string]interface{}{"output": stderr.String()})
	}

	if err != nil {
		return fmt.Errorf("SadTalker failed: %w", err)
	}
	return nil
}
