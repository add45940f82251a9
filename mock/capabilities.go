package mock

import (
	"context"
	"fmt"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// Deterministic stand-ins for the external capabilities, used by tests and
// by the demo mode when no real API credentials are around.

type FakeArticleSource struct {
	Articles []domain.Article
	Calls    int
}

func (f *FakeArticleSource) FetchArticles(ctx context.Context, endpoints []string) []domain.Article {
	f.Calls++
	out := make([]domain.Article, len(f.Articles))
	copy(out, f.Articles)
	return out
}

type FakeSummarizer struct {
	// Fail holds article contents whose summarization should error.
	Fail map[string]bool
}

func (f *FakeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if f.Fail[text] {
		return "", fmt.Errorf("summarization failed")
	}
	return "summary: " + text, nil
}

type FakeClassifier struct {
	// Labels maps summary text to the label to return; unlisted summaries
	// come back as real.
	Labels map[string]string
}

func (f *FakeClassifier) Classify(ctx context.Context, text string) (string, error) {
	if label, ok := f.Labels[text]; ok {
		if label == "" {
			return "", fmt.Errorf("classification failed")
		}
		return label, nil
	}
	return domain.LabelReal, nil
}

type FakeTranslator struct {
	// FailOn lists texts whose translation should error.
	FailOn map[string]bool
	Calls  int
}

func (f *FakeTranslator) Translate(ctx context.Context, text string, targetLang string) (string, error) {
	f.Calls++
	if f.FailOn[text] {
		return "", fmt.Errorf("translation failed")
	}
	return "[" + targetLang + "] " + text, nil
}

// DemoArticles returns a canned batch for running the server without real
// sources.
func DemoArticles(endpoint string) []domain.Article {
	articles := make([]domain.Article, 0, 3)
	for i := 1; i <= 3; i++ {
		articles = append(articles, domain.Article{
			Title:       fmt.Sprintf("Demo story %d", i),
			Content:     fmt.Sprintf("Demo content %d from %s telling a longer story about local events.", i, endpoint),
			Source:      endpoint,
			URL:         fmt.Sprintf("%s/story-%d", endpoint, i),
			PublishedAt: domain.PublishedUnknown,
		})
	}
	return articles
}
