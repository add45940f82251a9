package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// ElevenLabsConfig wires the primary neural TTS tier. A missing config is not
// fatal: the audio synthesizer treats the primary tier as unavailable and
// escalates to the secondary engine.
type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	Stability       float64
	SimilarityBoost float64
	Voices          map[domain.Channel]string
}

// VoiceFor selects the channel-specific voice identifier.
func (c *ElevenLabsConfig) VoiceFor(channel domain.Channel) string {
	return c.Voices[channel]
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_URL must be set")
	}
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	modelId := os.Getenv("ELEVEN_LABS_MODEL_ID")
	if modelId == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_MODEL_ID must be set")
	}

	stability, err := parseFloatEnv("ELEVEN_LABS_STABILITY", 0.5)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := parseFloatEnv("ELEVEN_LABS_SIMILARITY_BOOST", 0.75)
	if err != nil {
		return nil, err
	}

	voiceEn := os.Getenv("ELEVEN_LABS_VOICE_EN")
	if voiceEn == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_VOICE_EN must be set")
	}
	voiceUr := os.Getenv("ELEVEN_LABS_VOICE_UR")
	if voiceUr == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_VOICE_UR must be set")
	}

	return &ElevenLabsConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		ModelId:         modelId,
		Stability:       stability,
		SimilarityBoost: similarityBoost,
		Voices: map[domain.Channel]string{
			domain.ChannelEnglish: voiceEn,
			domain.ChannelUrdu:    voiceUr,
		},
	}, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return val, nil
}
