package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSpeech struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

// NewElevenLabsSpeech is the primary TTS tier: a neural voice per channel.
// Constructed with a nil config it reports outbound.ErrUnavailable, which the
// audio synthesizer treats as "engine not installed".
func NewElevenLabsSpeech(contentFetcher ContentFetcher, logger outbound.LoggerPort, elevenLabsConfig *config.ElevenLabsConfig) outbound.SpeechSynthesizerPort {
	return &elevenLabsSpeech{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (e *elevenLabsSpeech) Synthesize(ctx context.Context, text string, destPath string, channel domain.Channel) error {
	if e.elevenLabsConfig == nil {
		return outbound.ErrUnavailable
	}

	voiceID := e.elevenLabsConfig.VoiceFor(channel)
	if voiceID == "" {
		return fmt.Errorf("no voice configured for channel %s: %w", channel, outbound.ErrUnavailable)
	}

	req, err := e.getRequest(ctx, text, voiceID)
	if err != nil {
		return err
	}

	audio, err := e.FetchContent(req)
	if err != nil {
		return fmt.Errorf("fetch audio: %w", err)
	}

	if err := os.WriteFile(destPath, audio, 0o644); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}

	e.logger.InfoWithFields("Audio generated", map[string]interface{}{
		"engine": "elevenlabs",
		"dest":   destPath,
	})
	return nil
}

func (e *elevenLabsSpeech) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := elevenLabsRequest{
		Text:    text,
		ModelId: e.elevenLabsConfig.ModelId,
		VoiceSettings: voiceSettings{
			Stability:       e.elevenLabsConfig.Stability,
			SimilarityBoost: e.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal TTS request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.elevenLabsConfig.ApiUrl+"/"+voiceID, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("build TTS request: %w", err)
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", e.elevenLabsConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
