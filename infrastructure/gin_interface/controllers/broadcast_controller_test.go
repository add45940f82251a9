package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/domain"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/adapters"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/gin_interface/dto"
	"github.com/laiba2005shahzad/BuildWAI/mock"
)

type stubOrchestrator struct {
	channels []domain.Channel
	err      error
}

func (s *stubOrchestrator) RunChannel(ctx context.Context, channel domain.Channel) (string, error) {
	s.channels = append(s.channels, channel)
	return "", s.err
}

type stubVideo struct {
	toolInstalled bool
	imagesOK      bool
}

func (s *stubVideo) SynthesizeVideo(ctx context.Context, script string, channel domain.Channel) (string, error) {
	return "", nil
}

func (s *stubVideo) Ready() (bool, bool) { return s.toolInstalled, s.imagesOK }

func newTestRouter(orchestrator inbound.PipelineOrchestratorPort, video inbound.VideoSynthesizerPort,
	store outbound.ChannelStateStorePort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewBroadcastController(adapters.NewZerologWrapper(), mock.SyncDispatcher{}, orchestrator, video, store)
	controller.RegisterRoutes(router)
	return router
}

func TestGetNews_EmptyChannel(t *testing.T) {
	router := newTestRouter(&stubOrchestrator{}, &stubVideo{}, adapters.NewMemoryChannelStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news/english", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if string(body["video_url"]) != "null" {
		t.Fatalf("expected null video_url for empty channel, got %s", body["video_url"])
	}
}

func TestGetNews_PopulatedChannel(t *testing.T) {
	store := adapters.NewMemoryChannelStore()
	store.Publish(domain.ChannelUrdu, domain.ChannelState{
		News: []domain.AuthenticItem{
			{Article: domain.Article{Title: "خبر"}, Summary: "خلاصہ"},
		},
		VideoURL: "/static/videos/x/result.mp4",
	})
	router := newTestRouter(&stubOrchestrator{}, &stubVideo{}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news/urdu", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.NewsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.News) != 1 || resp.News[0].Title != "خبر" {
		t.Fatalf("unexpected news payload: %+v", resp.News)
	}
	if resp.VideoURL == nil || *resp.VideoURL != "/static/videos/x/result.mp4" {
		t.Fatalf("unexpected video URL: %v", resp.VideoURL)
	}
}

func TestGetNews_InvalidChannel(t *testing.T) {
	router := newTestRouter(&stubOrchestrator{}, &stubVideo{}, adapters.NewMemoryChannelStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news/german", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTriggerUpdate_StartsRun(t *testing.T) {
	orchestrator := &stubOrchestrator{}
	router := newTestRouter(orchestrator, &stubVideo{}, adapters.NewMemoryChannelStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/update", strings.NewReader(`{"language":"urdu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	if len(orchestrator.channels) != 1 || orchestrator.channels[0] != domain.ChannelUrdu {
		t.Fatalf("expected one urdu run, got %v", orchestrator.channels)
	}
}

func TestTriggerUpdate_BusyChannelStillAccepted(t *testing.T) {
	orchestrator := &stubOrchestrator{err: inbound.ErrChannelBusy}
	router := newTestRouter(orchestrator, &stubVideo{}, adapters.NewMemoryChannelStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/update", strings.NewReader(`{"language":"english"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("busy channel must still get the ack, got %d", w.Code)
	}
}

func TestTriggerUpdate_InvalidBody(t *testing.T) {
	router := newTestRouter(&stubOrchestrator{}, &stubVideo{}, adapters.NewMemoryChannelStore())

	for _, body := range []string{`{}`, `{"language":"french"}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/update", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestGetStatus(t *testing.T) {
	store := adapters.NewMemoryChannelStore()
	store.Publish(domain.ChannelEnglish, domain.ChannelState{
		News: []domain.AuthenticItem{
			{Article: domain.Article{Title: "one"}},
			{Article: domain.Article{Title: "two"}},
		},
		VideoURL: "/static/videos/x/result.mp4",
	})
	router := newTestRouter(&stubOrchestrator{}, &stubVideo{toolInstalled: true, imagesOK: false}, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || !resp.AvatarInstalled || resp.AvatarImagesOK {
		t.Fatalf("unexpected readiness flags: %+v", resp)
	}
	if resp.EnglishNewsCount != 2 || resp.UrduNewsCount != 0 {
		t.Fatalf("unexpected news counts: %+v", resp)
	}
	if !resp.EnglishVideoReady || resp.UrduVideoReady {
		t.Fatalf("unexpected video flags: %+v", resp)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubOrchestrator{}, &stubVideo{}, adapters.NewMemoryChannelStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
