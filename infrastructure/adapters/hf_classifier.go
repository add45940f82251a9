package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

type hfClassifier struct {
	ContentFetcher
	hfConfig *config.HFConfig
	labels   []string
}

// NewHFClassifier runs zero-shot classification against the closed real/fake
// label set and returns the top-ranked label.
func NewHFClassifier(contentFetcher ContentFetcher, hfConfig *config.HFConfig) outbound.ClassifierPort {
	return &hfClassifier{
		ContentFetcher: contentFetcher,
		hfConfig:       hfConfig,
		labels:         []string{domain.LabelReal, domain.LabelFake},
	}
}

func (c *hfClassifier) Classify(ctx context.Context, text string) (string, error) {
	reqBody := zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: c.labels},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.hfConfig.ApiUrl+"/"+c.hfConfig.ClassifyModel, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.hfConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	payload, err := c.FetchContent(req)
	if err != nil {
		return "", err
	}

	var result zeroShotResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", fmt.Errorf("decode classification response: %w", err)
	}
	if len(result.Labels) == 0 {
		return "", fmt.Errorf("classification returned no labels")
	}

	return result.Labels[0], nil
}
