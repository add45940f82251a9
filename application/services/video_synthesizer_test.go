package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/adapters"
	"github.com/laiba2005shahzad/BuildWAI/mock"
)

func testAvatarConfig(t *testing.T) *config.AvatarConfig {
	t.Helper()

	root := t.TempDir()
	cfg := &config.AvatarConfig{
		ToolRoot:   filepath.Join(root, "tool"),
		PythonBin:  "python3",
		OutputRoot: filepath.Join(root, "videos"),
		TempRoot:   filepath.Join(root, "temp"),
		Images: map[domain.Channel]string{
			domain.ChannelEnglish: filepath.Join(root, "english_anchor.jpg"),
			domain.ChannelUrdu:    filepath.Join(root, "urdu_anchor.jpg"),
		},
	}
	for _, dir := range []string{cfg.OutputRoot, cfg.TempRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, image := range cfg.Images {
		if err := os.WriteFile(image, []byte("jpg"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func workingAudio() *mock.FakeSpeech {
	return &mock.FakeSpeech{Payload: []byte("mp3")}
}

func TestVideoSynthesizer_Success(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	renderer := &mock.FakeRenderer{VideoName: "avatar##news.mp4"}
	audio := NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio())
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(), audio, renderer, nil, cfg)

	wdBefore, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	url, err := video.SynthesizeVideo(context.Background(), "the script", domain.ChannelEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "/static/videos/") || !strings.HasSuffix(url, "/avatar##news.mp4") {
		t.Fatalf("unexpected video URL: %q", url)
	}
	if renderer.LastReq.ImagePath != cfg.ImageFor(domain.ChannelEnglish) {
		t.Fatalf("renderer got wrong image: %q", renderer.LastReq.ImagePath)
	}
	if !filepath.IsAbs(renderer.LastReq.AudioPath) || !filepath.IsAbs(renderer.LastReq.ResultDir) {
		t.Fatal("renderer must receive absolute paths")
	}

	wdAfter, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if wdBefore != wdAfter {
		t.Fatalf("working directory changed during synthesis: %q -> %q", wdBefore, wdAfter)
	}
}

func TestVideoSynthesizer_ToolMissingAbortsEarly(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	renderer := &mock.FakeRenderer{CheckErr: fmt.Errorf("inference.py not found")}
	audio := workingAudio()
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), audio, workingAudio()), renderer, nil, cfg)

	if _, err := video.SynthesizeVideo(context.Background(), "script", domain.ChannelEnglish); err == nil {
		t.Fatal("expected error when tool check fails")
	}
	if renderer.Calls != 0 || audio.Calls != 0 {
		t.Fatal("no synthesis work should happen when the tool is missing")
	}
}

func TestVideoSynthesizer_MissingImageAborts(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	if err := os.Remove(cfg.ImageFor(domain.ChannelUrdu)); err != nil {
		t.Fatal(err)
	}
	renderer := &mock.FakeRenderer{VideoName: "out.mp4"}
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), renderer, nil, cfg)

	if _, err := video.SynthesizeVideo(context.Background(), "script", domain.ChannelUrdu); err == nil {
		t.Fatal("expected error for missing avatar image")
	}
	if renderer.Calls != 0 {
		t.Fatal("renderer should not run without an avatar image")
	}
}

func TestVideoSynthesizer_NoArtifact(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	renderer := &mock.FakeRenderer{}
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), renderer, nil, cfg)

	_, err := video.SynthesizeVideo(context.Background(), "script", domain.ChannelEnglish)
	if !errors.Is(err, ErrNoArtifact) {
		t.Fatalf("expected ErrNoArtifact, got %v", err)
	}
}

func TestVideoSynthesizer_RenderFailure(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	renderer := &mock.FakeRenderer{RenderErr: fmt.Errorf("exit status 1")}
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), renderer, nil, cfg)

	if _, err := video.SynthesizeVideo(context.Background(), "script", domain.ChannelEnglish); err == nil {
		t.Fatal("expected render error to propagate")
	}
}

func TestVideoSynthesizer_PublisherURL(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	renderer := &mock.FakeRenderer{VideoName: "out.mp4"}
	publisher := &mock.FakePublisher{URL: "https://bucket.s3.eu-west-1.amazonaws.com/videos/x/out.mp4"}
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), renderer, publisher, cfg)

	url, err := video.SynthesizeVideo(context.Background(), "script", domain.ChannelEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != publisher.URL {
		t.Fatalf("expected remote URL, got %q", url)
	}
}

func TestVideoSynthesizer_PublisherFailureServesLocal(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	renderer := &mock.FakeRenderer{VideoName: "out.mp4"}
	publisher := &mock.FakePublisher{Err: fmt.Errorf("upload rejected")}
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()), renderer, publisher, cfg)

	url, err := video.SynthesizeVideo(context.Background(), "script", domain.ChannelEnglish)
	if err != nil {
		t.Fatalf("upload failure must not fail the run: %v", err)
	}
	if !strings.HasPrefix(url, "/static/videos/") {
		t.Fatalf("expected local fallback URL, got %q", url)
	}
}

func TestVideoSynthesizer_Ready(t *testing.T) {
	t.Parallel()

	cfg := testAvatarConfig(t)
	video := NewVideoSynthesizer(adapters.NewZerologWrapper(),
		NewAudioSynthesizer(adapters.NewZerologWrapper(), workingAudio(), workingAudio()),
		&mock.FakeRenderer{}, nil, cfg)

	toolInstalled, imagesOK := video.Ready()
	if !toolInstalled || !imagesOK {
		t.Fatalf("expected ready state, got tool=%v images=%v", toolInstalled, imagesOK)
	}

	if err := os.Remove(cfg.ImageFor(domain.ChannelUrdu)); err != nil {
		t.Fatal(err)
	}
	if _, imagesOK = video.Ready(); imagesOK {
		t.Fatal("expected images not ready after removing one anchor")
	}
}
