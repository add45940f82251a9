package services

import (
	"context"
	"strings"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// maxScriptItems bounds how many items one broadcast narrates.
const maxScriptItems = 5

type channelBoilerplate struct {
	opening    string
	itemPrefix string
	closing    string
}

var boilerplate = map[domain.Channel]channelBoilerplate{
	domain.ChannelEnglish: {
		opening:    "Welcome to today's news broadcast.",
		itemPrefix: "Breaking news: ",
		closing:    "Thank you for watching. Stay tuned for more updates.",
	},
	domain.ChannelUrdu: {
		opening:    "آج کی خبروں میں خوش آمدید۔",
		itemPrefix: "اہم خبر: ",
		closing:    "دیکھنے کا شکریہ۔ مزید اپڈیٹس کے لیے ہمارے ساتھ رہیں۔",
	},
}

type scriptComposer struct {
	logger     outbound.LoggerPort
	translator outbound.TranslatorPort
}

// NewScriptComposer builds the narration script for a channel from its
// authentic items. Translated channels localize each headline and summary
// independently; a failed translation keeps the original text for that field
// only.
func NewScriptComposer(logger outbound.LoggerPort, translator outbound.TranslatorPort) inbound.ScriptComposerPort {
	return &scriptComposer{
		logger:     logger,
		translator: translator,
	}
}

func (s *scriptComposer) Compose(ctx context.Context, items []domain.AuthenticItem, channel domain.Channel) string {
	text := boilerplate[channel]

	if len(items) > maxScriptItems {
		items = items[:maxScriptItems]
	}

	var b strings.Builder
	b.WriteString(text.opening)
	b.WriteString("\n\n")

	for _, item := range items {
		title := item.Title
		summary := item.Summary
		if channel.Translated() {
			title = s.localize(ctx, title, channel)
			summary = s.localize(ctx, summary, channel)
		}

		b.WriteString(text.itemPrefix)
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	b.WriteString(text.closing)

	return strings.TrimSpace(b.String())
}

func (s *scriptComposer) localize(ctx context.Context, text string, channel domain.Channel) string {
	translated, err := s.translator.Translate(ctx, text, channel.LanguageCode())
	if err != nil {
		s.logger.WarnWithFields("Translation failed, keeping original text", map[string]interface{}{
			"channel": string(channel),
			"error":   err.Error(),
		})
		return text
	}
	return translated
}
