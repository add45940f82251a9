package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/laiba2005shahzad/BuildWAI/domain"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/adapters"
	"github.com/laiba2005shahzad/BuildWAI/mock"
)

func TestFallbackVideoGenerator_Success(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	muxer := &mock.FakeMuxer{}
	fallback := NewFallbackVideoGenerator(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), muxer, cfg)

	url, err := fallback.SynthesizeFallback(context.Background(), "short script", domain.ChannelEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "/static/videos/") || !strings.HasSuffix(url, "/news_video.mp4") {
		t.Fatalf("unexpected fallback URL: %q", url)
	}
	if muxer.LastReq.AudioPath == "" || muxer.LastReq.TextFilePath == "" {
		t.Fatal("muxer request missing input paths")
	}
}

func TestFallbackVideoGenerator_OverlayTextCapped(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	muxer := &mock.FakeMuxer{}
	fallback := NewFallbackVideoGenerator(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), muxer, cfg)

	script := strings.Repeat("خبر ", 200) // 800 runes
	if _, err := fallback.SynthesizeFallback(context.Background(), script, domain.ChannelUrdu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overlay, err := os.ReadFile(muxer.LastReq.TextFilePath)
	if err != nil {
		t.Fatal(err)
	}
	if got := utf8.RuneCount(overlay); got != 500 {
		t.Fatalf("expected overlay capped at 500 runes, got %d", got)
	}
}

func TestFallbackVideoGenerator_MuxFailure(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	muxer := &mock.FakeMuxer{Err: fmt.Errorf("ffmpeg exited 1")}
	fallback := NewFallbackVideoGenerator(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), muxer, cfg)

	if _, err := fallback.SynthesizeFallback(context.Background(), "script", domain.ChannelEnglish); err == nil {
		t.Fatal("expected mux failure to propagate")
	}
}

func TestFallbackVideoGenerator_AudioFailure(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	broken := &mock.FakeSpeech{Err: fmt.Errorf("tts down")}
	fallback := NewFallbackVideoGenerator(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), broken, broken), &mock.FakeMuxer{}, cfg)

	if _, err := fallback.SynthesizeFallback(context.Background(), "script", domain.ChannelEnglish); err == nil {
		t.Fatal("expected audio failure to propagate")
	}
}
