package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// ErrNoArtifact marks a tool run that exited cleanly but produced no usable
// video file.
var ErrNoArtifact = errors.New("no output video produced")

type videoSynthesizer struct {
	logger       outbound.LoggerPort
	audio        inbound.AudioSynthesizerPort
	renderer     outbound.AvatarRendererPort
	publisher    outbound.VideoPublisherPort
	avatarConfig *config.AvatarConfig
}

// NewVideoSynthesizer renders the talking-avatar broadcast video. Every run
// gets a fresh identifier and an isolated output directory under the video
// root, so concurrent runs never collide on filenames. The publisher is
// optional; pass nil to keep videos on local disk.
func NewVideoSynthesizer(logger outbound.LoggerPort, audio inbound.AudioSynthesizerPort,
	renderer outbound.AvatarRendererPort, publisher outbound.VideoPublisherPort,
	avatarConfig *config.AvatarConfig) inbound.VideoSynthesizerPort {
	return &videoSynthesizer{
		logger:       logger,
		audio:        audio,
		renderer:     renderer,
		publisher:    publisher,
		avatarConfig: avatarConfig,
	}
}

func (v *videoSynthesizer) Ready() (bool, bool) {
	toolInstalled := v.renderer.Check() == nil

	imagesOK := true
	for _, channel := range domain.Channels {
		if _, err := os.Stat(v.avatarConfig.ImageFor(channel)); err != nil {
			imagesOK = false
			break
		}
	}

	return toolInstalled, imagesOK
}

func (v *videoSynthesizer) SynthesizeVideo(ctx context.Context, script string, channel domain.Channel) (string, error) {
	if err := v.renderer.Check(); err != nil {
		return "", fmt.Errorf("avatar tool not installed: %w", err)
	}

	sourceImage := v.avatarConfig.ImageFor(channel)
	if _, err := os.Stat(sourceImage); err != nil {
		return "", fmt.Errorf("avatar image for %s not found: %w", channel, err)
	}

	runID := uuid.NewString()
	resultDir := filepath.Join(v.avatarConfig.OutputRoot, runID)
	if err := os.MkdirAll(resultDir, 0o755); err != nil {
		return "", fmt.Errorf("create result dir: %w", err)
	}

	audioPath := filepath.Join(v.avatarConfig.TempRoot, "audio_"+runID+".mp3")
	if err := v.audio.Synthesize(ctx, script, audioPath, channel); err != nil {
		return "", fmt.Errorf("audio synthesis failed: %w", err)
	}

	v.logger.InfoWithFields("Rendering avatar video", map[string]interface{}{
		"run_id":  runID,
		"channel": string(channel),
	})

	if err := v.renderer.Render(ctx, outbound.RenderAvatarRequest{
		AudioPath: audioPath,
		ImagePath: sourceImage,
		ResultDir: resultDir,
	}); err != nil {
		return "", err
	}

	videoName, err := v.findVideo(resultDir)
	if err != nil {
		return "", err
	}

	localURL := "/static/videos/" + runID + "/" + videoName
	v.logger.InfoWithFields("Video created", map[string]interface{}{"url": localURL})

	if v.publisher != nil {
		remoteURL, err := v.publisher.Publish(ctx, outbound.PublishVideoRequest{
			LocalPath: filepath.Join(resultDir, videoName),
			Key:       "videos/" + runID + "/" + videoName,
		})
		if err != nil {
			v.logger.Error(err, "Video upload failed, serving local artifact")
			return localURL, nil
		}
		return remoteURL, nil
	}

	return localURL, nil
}

// findVideo scans the run's result directory, non-recursively, for the file
// the tool should have produced.
func (v *videoSynthesizer) findVideo(resultDir string) (string, error) {
	entries, err := os.ReadDir(resultDir)
	if err != nil {
		return "", fmt.Errorf("read result dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".mp4") {
			return entry.Name(), nil
		}
	}

	v.logger.ErrorWithFields(ErrNoArtifact, "No output video found", map[string]interface{}{
		"result_dir": resultDir,
		"files":      names,
	})
	return "", fmt.Errorf("%w in %s", ErrNoArtifact, resultDir)
}
