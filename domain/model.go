package domain

import "fmt"

// Channel is one independently scheduled language edition of the broadcast.
type Channel string

const (
	ChannelEnglish Channel = "english"
	ChannelUrdu    Channel = "urdu"
)

// Channels lists every edition the pipeline serves, in scheduling order.
var Channels = []Channel{ChannelEnglish, ChannelUrdu}

// ParseChannel accepts both the channel name and its language code.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "english", "en":
		return ChannelEnglish, nil
	case "urdu", "ur":
		return ChannelUrdu, nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// LanguageCode returns the ISO 639-1 code used by translation and TTS.
func (c Channel) LanguageCode() string {
	if c == ChannelUrdu {
		return "ur"
	}
	return "en"
}

// Translated reports whether scripts for this channel go through the translator.
func (c Channel) Translated() bool {
	return c != ChannelEnglish
}

// PublishedUnknown is the sentinel stored when a source exposes no publish date.
const PublishedUnknown = "N/A"

// Article is one raw scraped news record. Immutable once created and
// discarded at the end of the run that produced it.
type Article struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_date"`
}

// SummarizedArticle carries an article together with its abstractive summary.
type SummarizedArticle struct {
	Article
	Summary string `json:"summary"`
}

// Classifier labels form a closed set.
const (
	LabelReal = "real"
	LabelFake = "fake"
)

// AuthenticItem is a summarized article whose classifier top label was
// LabelReal. Only authentic items reach scripting and the result store.
type AuthenticItem = SummarizedArticle

// ChannelState is the latest committed result for one channel. It is a
// snapshot value: a run replaces the whole state in one publish, never
// mutates it in place. An empty VideoURL means no video is available.
type ChannelState struct {
	News     []AuthenticItem `json:"news"`
	VideoURL string          `json:"video_url"`
}
