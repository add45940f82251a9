package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/domain"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/gin_interface/dto"
)

type BroadcastController interface {
	GetNews(c *gin.Context)
	TriggerUpdate(c *gin.Context)
	GetStatus(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type broadcastController struct {
	logger       outbound.LoggerPort
	workerPool   outbound.TaskDispatcher
	orchestrator inbound.PipelineOrchestratorPort
	video        inbound.VideoSynthesizerPort
	store        outbound.ChannelStateStorePort
}

func NewBroadcastController(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	orchestrator inbound.PipelineOrchestratorPort,
	video inbound.VideoSynthesizerPort,
	store outbound.ChannelStateStorePort,
) BroadcastController {
	return &broadcastController{
		logger:       logger,
		workerPool:   workerPool,
		orchestrator: orchestrator,
		video:        video,
		store:        store,
	}
}

func (b *broadcastController) GetNews(c *gin.Context) {
	channel, err := domain.ParseChannel(c.Param("channel"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid language"})
		return
	}

	state := b.store.Latest(channel)

	var videoURL *string
	if state.VideoURL != "" {
		videoURL = &state.VideoURL
	}

	c.JSON(http.StatusOK, dto.NewsResponse{
		News:     state.News,
		VideoURL: videoURL,
	})
}

// TriggerUpdate starts a run and acknowledges immediately. The run outcome
// is only observable later through GetNews; even a rejected busy channel
// gets the same ack.
func (b *broadcastController) TriggerUpdate(c *gin.Context) {
	var req dto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	channel, err := domain.ParseChannel(req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid language"})
		return
	}

	if err := b.workerPool.Submit(func() {
		if _, err := b.orchestrator.RunChannel(context.Background(), channel); err != nil {
			if errors.Is(err, inbound.ErrChannelBusy) {
				return
			}
			b.logger.ErrorWithFields(err, "On-demand run failed", map[string]interface{}{"channel": string(channel)})
		}
	}); err != nil {
		b.logger.Error(err, "Failed to submit on-demand run")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start update"})
		return
	}

	c.JSON(http.StatusAccepted, dto.UpdateResponse{
		Message: fmt.Sprintf("News update for %s started", req.Language),
	})
}

func (b *broadcastController) GetStatus(c *gin.Context) {
	toolInstalled, imagesOK := b.video.Ready()

	english := b.store.Latest(domain.ChannelEnglish)
	urdu := b.store.Latest(domain.ChannelUrdu)

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:            "ok",
		AvatarInstalled:   toolInstalled,
		AvatarImagesOK:    imagesOK,
		EnglishNewsCount:  len(english.News),
		UrduNewsCount:     len(urdu.News),
		EnglishVideoReady: english.VideoURL != "",
		UrduVideoReady:    urdu.VideoURL != "",
	})
}

func (b *broadcastController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	g.GET("/api/news/:channel", b.GetNews)
	g.POST("/api/update", b.TriggerUpdate)
	g.GET("/api/status", b.GetStatus)
}
