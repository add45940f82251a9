package config

import (
	"fmt"
	"os"
)

// HFConfig wires the Hugging Face inference API used for summarization and
// authenticity classification.
type HFConfig struct {
	ApiUrl        string
	ApiKey        string
	SummaryModel  string
	ClassifyModel string
}

func GetHFConfig() (*HFConfig, error) {
	apiKey := os.Getenv("HF_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("HF_API_KEY must be set")
	}

	apiUrl := os.Getenv("HF_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api-inference.huggingface.co/models"
	}

	summaryModel := os.Getenv("HF_SUMMARY_MODEL")
	if summaryModel == "" {
		summaryModel = "facebook/bart-large-cnn"
	}

	classifyModel := os.Getenv("HF_CLASSIFY_MODEL")
	if classifyModel == "" {
		classifyModel = "facebook/bart-large-mnli"
	}

	return &HFConfig{
		ApiUrl:        apiUrl,
		ApiKey:        apiKey,
		SummaryModel:  summaryModel,
		ClassifyModel: classifyModel,
	}, nil
}
