package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
)

type summarizationRequest struct {
	Inputs     string                  `json:"inputs"`
	Parameters summarizationParameters `json:"parameters"`
}

type summarizationParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type summarizationResponse struct {
	SummaryText string `json:"summary_text"`
}

type hfSummarizer struct {
	ContentFetcher
	hfConfig *config.HFConfig
}

// NewHFSummarizer calls the hosted summarization model one text at a time.
// Length bounds are derived from the input's word count.
func NewHFSummarizer(contentFetcher ContentFetcher, hfConfig *config.HFConfig) outbound.SummarizerPort {
	return &hfSummarizer{
		ContentFetcher: contentFetcher,
		hfConfig:       hfConfig,
	}
}

func (s *hfSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	words := len(strings.Fields(text))
	maxLen := min(180, words*7/10)
	minLen := max(50, words*3/10)
	if minLen > maxLen {
		minLen = maxLen
	}

	reqBody := summarizationRequest{
		Inputs: text,
		Parameters: summarizationParameters{
			MaxLength: maxLen,
			MinLength: minLen,
			DoSample:  false,
		},
	}

	payload, err := s.postModel(ctx, s.hfConfig.SummaryModel, reqBody)
	if err != nil {
		return "", err
	}

	var results []summarizationResponse
	if err := json.Unmarshal(payload, &results); err != nil {
		return "", fmt.Errorf("decode summarization response: %w", err)
	}
	if len(results) == 0 || results[0].SummaryText == "" {
		return "", fmt.Errorf("summarization returned no summary")
	}

	return results[0].SummaryText, nil
}

func (s *hfSummarizer) postModel(ctx context.Context, model string, body interface{}) ([]byte, error) {
	jsonPayload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.hfConfig.ApiUrl+"/"+model, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.hfConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return s.FetchContent(req)
}
