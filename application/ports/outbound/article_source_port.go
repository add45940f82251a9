package outbound

import (
	"context"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// ArticleSourcePort pulls raw articles from a list of source endpoints.
// Per-source and per-article failures are logged and skipped inside the
// adapter; a total failure shows up as an empty slice, never as an error.
type ArticleSourcePort interface {
	FetchArticles(ctx context.Context, endpoints []string) []domain.Article
}
