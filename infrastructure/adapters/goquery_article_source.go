package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type goqueryArticleSource struct {
	logger outbound.LoggerPort
	client *http.Client
	cfg    *config.ChannelsConfig
}

// NewGoqueryArticleSource scrapes article links and text from news front
// pages. Every failure is per-source or per-article: logged, skipped, never
// propagated.
func NewGoqueryArticleSource(logger outbound.LoggerPort, cfg *config.ChannelsConfig) outbound.ArticleSourcePort {
	return &goqueryArticleSource{
		logger: logger,
		client: &http.Client{Timeout: 20 * time.Second},
		cfg:    cfg,
	}
}

func (g *goqueryArticleSource) FetchArticles(ctx context.Context, endpoints []string) []domain.Article {
	articles := make([]domain.Article, 0)

	for _, endpoint := range endpoints {
		g.logger.InfoWithFields("Scraping source", map[string]interface{}{"source": endpoint})

		doc, err := g.fetchDocument(ctx, endpoint)
		if err != nil {
			g.logger.ErrorWithFields(err, "Failed to load source front page", map[string]interface{}{"source": endpoint})
			continue
		}

		links := g.extractLinks(doc, endpoint)
		g.logger.InfoWithFields("Found candidate articles", map[string]interface{}{
			"source": endpoint,
			"count":  len(links),
		})

		for _, link := range links {
			select {
			case <-ctx.Done():
				return articles
			case <-time.After(g.cfg.FetchDelay):
			}

			article, err := g.fetchArticle(ctx, endpoint, link)
			if err != nil {
				g.logger.ErrorWithFields(err, "Failed to parse article", map[string]interface{}{"url": link})
				continue
			}
			if article == nil {
				continue
			}
			articles = append(articles, *article)
		}
	}

	g.logger.InfoWithFields("Extracted articles in total", map[string]interface{}{"count": len(articles)})
	return articles
}

func (g *goqueryArticleSource) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; news-broadcast-bot)")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", pageURL, res.Status)
	}

	return goquery.NewDocumentFromReader(res.Body)
}

// extractLinks picks at most ArticlesPerSource same-host anchors that look
// like article pages.
func (g *goqueryArticleSource) extractLinks(doc *goquery.Document, endpoint string) []string {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil
	}

	seen := map[string]struct{}{}
	links := make([]string, 0, g.cfg.ArticlesPerSource)

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host || !looksLikeArticlePath(resolved.Path) {
			return true
		}
		resolved.Fragment = ""
		link := resolved.String()
		if _, ok := seen[link]; ok {
			return true
		}
		seen[link] = struct{}{}
		links = append(links, link)
		return len(links) < g.cfg.ArticlesPerSource
	})

	return links
}

func looksLikeArticlePath(path string) bool {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return false
	}
	// Front pages link to sections with short flat paths; article pages sit
	// deeper or carry a slug-like final segment.
	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]
	return len(segments) >= 2 && (strings.Contains(last, "-") || strings.ContainsAny(last, "0123456789"))
}

// fetchArticle returns nil, nil when the page parses but its text falls
// outside the configured bounds.
func (g *goqueryArticleSource) fetchArticle(ctx context.Context, endpoint, link string) (*domain.Article, error) {
	doc, err := g.fetchDocument(ctx, link)
	if err != nil {
		return nil, err
	}

	title := extractTitle(doc)
	content := extractBody(doc)

	if len([]rune(content)) <= g.cfg.MinContentRunes || title == "" {
		return nil, nil
	}
	if runes := []rune(content); len(runes) > g.cfg.MaxContentRunes {
		content = string(runes[:g.cfg.MaxContentRunes])
	}

	published := domain.PublishedUnknown
	if raw, ok := doc.Find(`meta[property="article:published_time"]`).Attr("content"); ok {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			published = ts.Format(time.RFC3339)
		}
	}

	return &domain.Article{
		Title:       title,
		Content:     content,
		Source:      endpoint,
		URL:         link,
		PublishedAt: published,
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && og != "" {
		return strings.TrimSpace(og)
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func extractBody(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n")
}
