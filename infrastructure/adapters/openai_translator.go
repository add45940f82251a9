package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
)

var languageNames = map[string]string{
	"en": "English",
	"ur": "Urdu",
}

type openAITranslator struct {
	logger       outbound.LoggerPort
	client       *openai.Client
	openAIConfig *config.OpenAIConfig
}

// NewOpenAITranslator translates one text at a time through a chat
// completion. Callers keep the original text when translation fails.
func NewOpenAITranslator(logger outbound.LoggerPort, client *openai.Client, openAIConfig *config.OpenAIConfig) outbound.TranslatorPort {
	return &openAITranslator{
		logger:       logger,
		client:       client,
		openAIConfig: openAIConfig,
	}
}

func (t *openAITranslator) Translate(ctx context.Context, text string, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	language, ok := languageNames[targetLang]
	if !ok {
		language = targetLang
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.openAIConfig.TranslateModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("Translate the user's text to %s. Reply with the translation only, no commentary.",
					language),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("translation returned no choices")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("translation returned empty text")
	}

	return translated, nil
}
