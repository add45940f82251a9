package config

import (
	"fmt"
	"os"
)

// OpenAIConfig wires the OpenAI client used for translation and for the
// secondary TTS tier.
type OpenAIConfig struct {
	ApiKey         string
	TranslateModel string
	SpeechModel    string
	SpeechVoice    string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}

	translateModel := os.Getenv("OPENAI_TRANSLATE_MODEL")
	if translateModel == "" {
		translateModel = "gpt-4o-mini"
	}

	speechModel := os.Getenv("OPENAI_SPEECH_MODEL")
	if speechModel == "" {
		speechModel = "tts-1"
	}

	speechVoice := os.Getenv("OPENAI_SPEECH_VOICE")
	if speechVoice == "" {
		speechVoice = "alloy"
	}

	return &OpenAIConfig{
		ApiKey:         apiKey,
		TranslateModel: translateModel,
		SpeechModel:    speechModel,
		SpeechVoice:    speechVoice,
	}, nil
}
