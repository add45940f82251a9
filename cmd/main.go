package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/inbound"
	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/application/services"
	"github.com/laiba2005shahzad/BuildWAI/config"
	"github.com/laiba2005shahzad/BuildWAI/domain"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/adapters"
	"github.com/laiba2005shahzad/BuildWAI/infrastructure/gin_interface/controllers"
	"github.com/laiba2005shahzad/BuildWAI/middleware"
	"github.com/laiba2005shahzad/BuildWAI/mock"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	zeroLogger := adapters.NewZerologWrapper()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	channelsConfig, err := config.GetChannelsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get channels config")
	}

	avatarConfig, err := config.GetAvatarConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get avatar config")
	}

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	fetcher := adapters.NewContentFetcher(zeroLogger)

	var (
		source     outbound.ArticleSourcePort
		summarizer outbound.SummarizerPort
		classifier outbound.ClassifierPort
		translator outbound.TranslatorPort
		primary    outbound.SpeechSynthesizerPort
		secondary  outbound.SpeechSynthesizerPort
	)

	if serverConfig.MockCapabilities {
		zeroLogger.Warn("MOCK_CAPABILITIES set, wiring deterministic capability stand-ins")
		demo := make([]domain.Article, 0)
		for _, channel := range domain.Channels {
			for _, endpoint := range channelsConfig.SourcesFor(channel) {
				demo = append(demo, mock.DemoArticles(endpoint)...)
			}
		}
		source = &mock.FakeArticleSource{Articles: demo}
		summarizer = &mock.FakeSummarizer{}
		classifier = &mock.FakeClassifier{}
		translator = &mock.FakeTranslator{}
		primary = &mock.FakeSpeech{Payload: []byte("demo-audio")}
		secondary = &mock.FakeSpeech{Payload: []byte("demo-audio")}
	} else {
		hfConfig, err := config.GetHFConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get HF config")
		}

		openAIConfig, err := config.GetOpenAIConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get OpenAI config")
		}
		openAIClient := openai.NewClient(openAIConfig.ApiKey)

		// A missing primary TTS config is not fatal: the synthesizer
		// escalates to the secondary tier.
		elevenLabsConfig, err := config.GetElevenLabsConfig()
		if err != nil {
			zeroLogger.Warn("Primary TTS engine not configured: " + err.Error())
			elevenLabsConfig = nil
		}

		source = adapters.NewGoqueryArticleSource(zeroLogger, channelsConfig)
		summarizer = adapters.NewHFSummarizer(fetcher, hfConfig)
		classifier = adapters.NewHFClassifier(fetcher, hfConfig)
		translator = adapters.NewOpenAITranslator(zeroLogger, openAIClient, openAIConfig)
		primary = adapters.NewElevenLabsSpeech(fetcher, zeroLogger, elevenLabsConfig)
		secondary = adapters.NewOpenAISpeech(zeroLogger, openAIClient, openAIConfig)
	}

	audio := services.NewAudioSynthesizer(zeroLogger, primary, secondary)

	renderer := adapters.NewSadTalkerRenderer(zeroLogger, avatarConfig)
	if err := renderer.Check(); err != nil {
		zeroLogger.Warn("SadTalker not properly installed, video creation will not work: " + err.Error())
	}

	var publisher outbound.VideoPublisherPort
	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get S3 config")
	}
	if s3Config != nil {
		publisher, err = adapters.NewS3VideoPublisher(zeroLogger, s3Config)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 video publisher")
		}
	}

	video := services.NewVideoSynthesizer(zeroLogger, audio, renderer, publisher, avatarConfig)
	if _, imagesOK := video.Ready(); !imagesOK {
		zeroLogger.Warn("Avatar images not found, video creation may fail")
	}

	var fallback inbound.FallbackVideoPort
	if serverConfig.FallbackVideoEnabled {
		fallback = services.NewFallbackVideoGenerator(zeroLogger, audio, adapters.NewFFMPEGMultiplexer(zeroLogger), avatarConfig)
	}

	var notifier outbound.NotifierPort
	telegramConfig, err := config.GetTelegramConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get Telegram config")
	}
	if telegramConfig != nil {
		notifier, err = adapters.NewTelegramNotifier(zeroLogger, telegramConfig)
		if err != nil {
			zeroLogger.Error(err, "Telegram notifier disabled")
			notifier = nil
		}
	}

	composer := services.NewScriptComposer(zeroLogger, translator)
	store := adapters.NewMemoryChannelStore()

	orchestrator := services.NewPipelineOrchestrator(services.OrchestratorDeps{
		Logger:     zeroLogger,
		Source:     source,
		Summarizer: summarizer,
		Classifier: classifier,
		Composer:   composer,
		Video:      video,
		Fallback:   fallback,
		Store:      store,
		Notifier:   notifier,
		Channels:   channelsConfig,
		RunTimeout: serverConfig.RunTimeout,
	})

	ctx := context.Background()

	zeroLogger.Info("Starting initial news fetch")
	for _, channel := range domain.Channels {
		ch := channel
		if err := workerPool.Submit(func() {
			if _, err := orchestrator.RunChannel(ctx, ch); err != nil {
				zeroLogger.ErrorWithFields(err, "Initial run failed", map[string]interface{}{"channel": string(ch)})
			}
		}); err != nil {
			log.Fatal().Err(err).Msg("Failed to submit initial run")
		}
	}

	scheduler := services.NewBroadcastScheduler(zeroLogger, workerPool, orchestrator, serverConfig.ScheduleInterval)
	if err := workerPool.Submit(func() { scheduler.Start(ctx) }); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	janitor := services.NewArtifactJanitor(zeroLogger, avatarConfig, serverConfig.ArtifactRetention)
	if err := workerPool.Submit(func() { janitor.Start(ctx) }); err != nil {
		log.Fatal().Err(err).Msg("Failed to start artifact janitor")
	}

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	if serverConfig.JWKSUrl != "" {
		authHandler, err := middleware.NewAuthHandler(serverConfig.JWKSUrl, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler")
		}
		router.Use(authHandler.AuthMiddleware())
	}

	router.Static("/static/videos", avatarConfig.OutputRoot)

	broadcastController := controllers.NewBroadcastController(zeroLogger, workerPool, orchestrator, video, store)
	broadcastController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
