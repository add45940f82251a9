package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

func TestElevenLabsSpeech_NilConfigUnavailable(t *testing.T) {
	t.Parallel()

	speech := NewElevenLabsSpeech(NewContentFetcher(NewZerologWrapper()), NewZerologWrapper(), nil)

	err := speech.Synthesize(context.Background(), "hello", filepath.Join(t.TempDir(), "a.mp3"), domain.ChannelEnglish)
	if !errors.Is(err, outbound.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestElevenLabsSpeech_MissingVoiceUnavailable(t *testing.T) {
	t.Parallel()

	cfg := &config.ElevenLabsConfig{
		ApiUrl:  "https://api.elevenlabs.io/v1/text-to-speech",
		ApiKey:  "key",
		ModelId: "eleven_multilingual_v2",
		Voices:  map[domain.Channel]string{domain.ChannelEnglish: "voice-en"},
	}
	speech := NewElevenLabsSpeech(NewContentFetcher(NewZerologWrapper()), NewZerologWrapper(), cfg)

	err := speech.Synthesize(context.Background(), "hello", filepath.Join(t.TempDir(), "a.mp3"), domain.ChannelUrdu)
	if !errors.Is(err, outbound.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for unvoiced channel, got %v", err)
	}
}

func TestElevenLabsSpeech_WritesAudio(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voice-ur" {
			t.Errorf("unexpected voice path: %q", r.URL.Path)
		}
		if key := r.Header.Get("xi-api-key"); key != "key" {
			t.Errorf("unexpected api key header: %q", key)
		}
		var req elevenLabsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "ہیلو" || req.ModelId != "eleven_multilingual_v2" {
			t.Errorf("unexpected request body: %+v", req)
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	cfg := &config.ElevenLabsConfig{
		ApiUrl:          server.URL,
		ApiKey:          "key",
		ModelId:         "eleven_multilingual_v2",
		Stability:       0.5,
		SimilarityBoost: 0.75,
		Voices:          map[domain.Channel]string{domain.ChannelUrdu: "voice-ur"},
	}
	speech := NewElevenLabsSpeech(NewContentFetcher(NewZerologWrapper()), NewZerologWrapper(), cfg)

	dest := filepath.Join(t.TempDir(), "a.mp3")
	if err := speech.Synthesize(context.Background(), "ہیلو", dest, domain.ChannelUrdu); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	audio, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio payload: %q", audio)
	}
}

func TestElevenLabsSpeech_ServerErrorNotUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := &config.ElevenLabsConfig{
		ApiUrl:  server.URL,
		ApiKey:  "key",
		ModelId: "eleven_multilingual_v2",
		Voices:  map[domain.Channel]string{domain.ChannelEnglish: "voice-en"},
	}
	speech := NewElevenLabsSpeech(NewContentFetcher(NewZerologWrapper()), NewZerologWrapper(), cfg)

	err := speech.Synthesize(context.Background(), "hello", filepath.Join(t.TempDir(), "a.mp3"), domain.ChannelEnglish)
	if err == nil {
		t.Fatal("expected error on non-OK status")
	}
	if errors.Is(err, outbound.ErrUnavailable) {
		t.Fatal("a live engine's API failure must not report as unavailable")
	}
}
