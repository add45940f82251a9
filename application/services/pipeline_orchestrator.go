package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// OrchestratorDeps wires every collaborator of a channel run. Fallback and
// Notifier are optional; leave them nil to disable those paths.
type OrchestratorDeps struct {
	Logger     outbound.LoggerPort
	Source     outbound.ArticleSourcePort
	Summarizer outbound.SummarizerPort
	Classifier outbound.ClassifierPort
	Composer   inbound.ScriptComposerPort
	Video      inbound.VideoSynthesizerPort
	Fallback   inbound.FallbackVideoPort
	Store      outbound.ChannelStateStorePort
	Notifier   outbound.NotifierPort
	Channels   *config.ChannelsConfig
	RunTimeout time.Duration
}

type pipelineOrchestrator struct {
	OrchestratorDeps
	locks map[domain.Channel]*sync.Mutex
}

// NewPipelineOrchestrator drives the full stage sequence for one channel:
// ingest, summarize, filter, compose, synthesize video, commit. Each stage
// short-circuits the run on an empty result without touching the channel's
// previously committed state. Runs for the same channel are single-flight:
// a trigger for a busy channel is rejected with ErrChannelBusy.
func NewPipelineOrchestrator(deps OrchestratorDeps) inbound.PipelineOrchestratorPort {
	locks := make(map[domain.Channel]*sync.Mutex, len(domain.Channels))
	for _, channel := range domain.Channels {
		locks[channel] = &sync.Mutex{}
	}
	return &pipelineOrchestrator{
		OrchestratorDeps: deps,
		locks:            locks,
	}
}

func (p *pipelineOrchestrator) RunChannel(ctx context.Context, channel domain.Channel) (string, error) {
	lock, ok := p.locks[channel]
	if !ok {
		return "", fmt.Errorf("unknown channel %q", channel)
	}
	if !lock.TryLock() {
		p.Logger.WarnWithFields("Run rejected, channel busy", map[string]interface{}{"channel": string(channel)})
		return "", inbound.ErrChannelBusy
	}
	defer lock.Unlock()

	if p.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.RunTimeout)
		defer cancel()
	}

	p.Logger.InfoWithFields("Running news pipeline", map[string]interface{}{"channel": string(channel)})

	articles := p.Source.FetchArticles(ctx, p.Channels.SourcesFor(channel))
	if len(articles) == 0 {
		p.Logger.Warn("No articles found")
		return "", nil
	}

	summaries := p.summarize(ctx, articles)
	if len(summaries) == 0 {
		p.Logger.Warn("No summaries generated")
		return "", nil
	}

	authentic := p.filterAuthentic(ctx, summaries)
	if len(authentic) == 0 {
		p.Logger.Warn("No real news passed the filter")
		return "", nil
	}

	script := p.Composer.Compose(ctx, authentic, channel)
	p.Logger.InfoWithFields("Script ready", map[string]interface{}{"channel": string(channel)})

	videoURL := p.synthesizeVideo(ctx, script, channel)

	// News is committed even when video synthesis failed; textual results
	// stand on their own. A failed video clears the slot's previous URL.
	p.Store.Publish(channel, domain.ChannelState{
		News:     authentic,
		VideoURL: videoURL,
	})

	p.notify(ctx, channel, authentic, videoURL)

	return videoURL, nil
}

func (p *pipelineOrchestrator) summarize(ctx context.Context, articles []domain.Article) []domain.SummarizedArticle {
	summaries := make([]domain.SummarizedArticle, 0, len(articles))
	for _, article := range articles {
		summary, err := p.Summarizer.Summarize(ctx, article.Content)
		if err != nil {
			p.Logger.ErrorWithFields(err, "Summary failed", map[string]interface{}{"title": article.Title})
			continue
		}
		summaries = append(summaries, domain.SummarizedArticle{
			Article: article,
			Summary: summary,
		})
		p.Logger.InfoWithFields("Summarized", map[string]interface{}{"title": article.Title})
	}
	return summaries
}

func (p *pipelineOrchestrator) filterAuthentic(ctx context.Context, summaries []domain.SummarizedArticle) []domain.AuthenticItem {
	authentic := make([]domain.AuthenticItem, 0, len(summaries))
	for _, item := range summaries {
		label, err := p.Classifier.Classify(ctx, item.Summary)
		if err != nil {
			p.Logger.ErrorWithFields(err, "Classification failed", map[string]interface{}{"title": item.Title})
			continue
		}
		if label != domain.LabelReal {
			p.Logger.InfoWithFields("Potential fake news", map[string]interface{}{"title": item.Title})
			continue
		}
		p.Logger.InfoWithFields("Real news", map[string]interface{}{"title": item.Title})
		authentic = append(authentic, item)
	}
	return authentic
}

func (p *pipelineOrchestrator) synthesizeVideo(ctx context.Context, script string, channel domain.Channel) string {
	url, err := p.Video.SynthesizeVideo(ctx, script, channel)
	if err == nil {
		return url
	}
	p.Logger.ErrorWithFields(err, "Video synthesis failed", map[string]interface{}{"channel": string(channel)})

	if p.Fallback == nil {
		return ""
	}

	url, err = p.Fallback.SynthesizeFallback(ctx, script, channel)
	if err != nil {
		p.Logger.ErrorWithFields(err, "Fallback video failed", map[string]interface{}{"channel": string(channel)})
		return ""
	}
	return url
}

func (p *pipelineOrchestrator) notify(ctx context.Context, channel domain.Channel, items []domain.AuthenticItem, videoURL string) {
	if p.Notifier == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Broadcast updated for %s (%d stories)\n", channel, len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item.Title)
	}
	if videoURL != "" {
		fmt.Fprintf(&b, "Video: %s\n", videoURL)
	}

	if err := p.Notifier.PublishDigest(ctx, b.String()); err != nil {
		p.Logger.Error(err, "Failed to publish broadcast digest")
	}
}
