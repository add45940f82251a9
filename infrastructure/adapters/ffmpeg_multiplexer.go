package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
)

const (
	fallbackBackground = "blue"
	fallbackTextColor  = "white"
	fallbackResolution = "1280x720"
	fallbackDuration   = 60
)

type ffmpegMultiplexer struct {
	logger outbound.LoggerPort
}

// NewFFMPEGMultiplexer renders a fixed-duration colored background with the
// script text overlaid and muxes in the narration audio.
func NewFFMPEGMultiplexer(logger outbound.LoggerPort) outbound.VideoMultiplexerPort {
	return &ffmpegMultiplexer{logger: logger}
}

func (f *ffmpegMultiplexer) Mux(ctx context.Context, req outbound.MuxVideoRequest) error {
	drawtext := fmt.Sprintf(
		"drawtext=textfile='%s':x=(w-text_w)/2:y=(h-text_h)/2:fontsize=24:fontcolor=%s:box=1:boxcolor=black@0.5:boxborderw=5:line_spacing=10",
		req.TextFilePath, fallbackTextColor)

	args := []string{
		"-f", "lavfi",
		"-i", fmt.Sprintf("color=c=%s:s=%s:d=%d", fallbackBackground, fallbackResolution, fallbackDuration),
		"-i", req.AudioPath,
		"-vf", drawtext,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-shortest",
		req.OutputPath,
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		f.logger.ErrorWithFields(err, "ffmpeg failed", map[string]interface{}{
			"output": output.String(),
		})
		return fmt.Errorf("ffmpeg mux: %w", err)
	}

	return nil
}
