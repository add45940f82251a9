package adapters

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type openAISpeech struct {
	logger       outbound.LoggerPort
	client       *openai.Client
	openAIConfig *config.OpenAIConfig
}

// NewOpenAISpeech is the secondary TTS tier, a single generic voice for all
// channels.
func NewOpenAISpeech(logger outbound.LoggerPort, client *openai.Client, openAIConfig *config.OpenAIConfig) outbound.SpeechSynthesizerPort {
	return &openAISpeech{
		logger:       logger,
		client:       client,
		openAIConfig: openAIConfig,
	}
}

func (o *openAISpeech) Synthesize(ctx context.Context, text string, destPath string, channel domain.Channel) error {
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.openAIConfig.SpeechModel),
		Input:          text,
		Voice:          openai.SpeechVoice(o.openAIConfig.SpeechVoice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return fmt.Errorf("synthesize speech: %w", err)
	}
	defer resp.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("write audio file: %w", err)
	}

	o.logger.InfoWithFields("Audio generated", map[string]interface{}{
		"engine":  "openai",
		"dest":    destPath,
		"channel": string(channel),
	})
	return nil
}
