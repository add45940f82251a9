package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type audioSynthesizer struct {
	logger    outbound.LoggerPort
	primary   outbound.SpeechSynthesizerPort
	secondary outbound.SpeechSynthesizerPort
}

// NewAudioSynthesizer chains two TTS tiers in strict order with no retries
// within a tier. The secondary engine runs only when the primary is
// unavailable or errors. A primary call that succeeds but leaves a zero-byte
// file is a terminal failure, not escalated; see DESIGN.md for why this
// asymmetry is preserved.
func NewAudioSynthesizer(logger outbound.LoggerPort, primary, secondary outbound.SpeechSynthesizerPort) inbound.AudioSynthesizerPort {
	return &audioSynthesizer{
		logger:    logger,
		primary:   primary,
		secondary: secondary,
	}
}

func (a *audioSynthesizer) Synthesize(ctx context.Context, text string, destPath string, channel domain.Channel) error {
	err := a.primary.Synthesize(ctx, text, destPath, channel)
	if err == nil {
		return a.verifyArtifact(destPath)
	}

	if errors.Is(err, outbound.ErrUnavailable) {
		a.logger.Warn("Primary TTS engine unavailable, trying secondary engine")
	} else {
		a.logger.ErrorWithFields(err, "Primary TTS engine failed, trying secondary engine", map[string]interface{}{
			"channel": string(channel),
		})
	}

	if err := a.secondary.Synthesize(ctx, text, destPath, channel); err != nil {
		return fmt.Errorf("all TTS engines failed: %w", err)
	}

	return a.verifyArtifact(destPath)
}

func (a *audioSynthesizer) verifyArtifact(destPath string) error {
	info, err := os.Stat(destPath)
	if err != nil {
		return fmt.Errorf("audio file not created: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("audio file is empty: %s", destPath)
	}
	return nil
}
