package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// fallbackTextLimit caps how much of the script fits on the overlay.
const fallbackTextLimit = 500

const fallbackVideoName = "news_video.mp4"

type fallbackVideoGenerator struct {
	logger       outbound.LoggerPort
	audio        inbound.AudioSynthesizerPort
	muxer        outbound.VideoMultiplexerPort
	avatarConfig *config.AvatarConfig
}

// NewFallbackVideoGenerator produces the text-overlay broadcast video. It is
// independent of the avatar synthesizer and follows the same per-run
// isolated-directory policy.
func NewFallbackVideoGenerator(logger outbound.LoggerPort, audio inbound.AudioSynthesizerPort,
	muxer outbound.VideoMultiplexerPort, avatarConfig *config.AvatarConfig) inbound.FallbackVideoPort {
	return &fallbackVideoGenerator{
		logger:       logger,
		audio:        audio,
		muxer:        muxer,
		avatarConfig: avatarConfig,
	}
}

func (f *fallbackVideoGenerator) SynthesizeFallback(ctx context.Context, script string, channel domain.Channel) (string, error) {
	runID := uuid.NewString()
	outputDir := filepath.Join(f.avatarConfig.OutputRoot, runID)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	audioPath := filepath.Join(f.avatarConfig.TempRoot, "audio_"+runID+".mp3")
	if err := f.audio.Synthesize(ctx, script, audioPath, channel); err != nil {
		return "", fmt.Errorf("audio synthesis failed: %w", err)
	}

	overlay := script
	if runes := []rune(overlay); len(runes) > fallbackTextLimit {
		overlay = string(runes[:fallbackTextLimit])
	}

	textPath := filepath.Join(f.avatarConfig.TempRoot, "text_"+runID+".txt")
	if err := os.WriteFile(textPath, []byte(overlay), 0o644); err != nil {
		return "", fmt.Errorf("write overlay text: %w", err)
	}

	outputPath := filepath.Join(outputDir, fallbackVideoName)
	if err := f.muxer.Mux(ctx, outbound.MuxVideoRequest{
		AudioPath:    audioPath,
		TextFilePath: textPath,
		OutputPath:   outputPath,
	}); err != nil {
		return "", err
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", fmt.Errorf("%w in %s", ErrNoArtifact, outputDir)
	}

	url := "/static/videos/" + runID + "/" + fallbackVideoName
	f.logger.InfoWithFields("Fallback video created", map[string]interface{}{"url": url})
	return url, nil
}
