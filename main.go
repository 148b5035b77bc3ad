package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"

	"github.com/dskvich/jarvis-assistant/pkg/actions"
	"github.com/dskvich/jarvis-assistant/pkg/api/handler"
	"github.com/dskvich/jarvis-assistant/pkg/api/middleware"
	"github.com/dskvich/jarvis-assistant/pkg/converter"
	"github.com/dskvich/jarvis-assistant/pkg/database"
	"github.com/dskvich/jarvis-assistant/pkg/digitalocean"
	"github.com/dskvich/jarvis-assistant/pkg/gcal"
	"github.com/dskvich/jarvis-assistant/pkg/logger"
	"github.com/dskvich/jarvis-assistant/pkg/news"
	"github.com/dskvich/jarvis-assistant/pkg/openai"
	"github.com/dskvich/jarvis-assistant/pkg/repository"
	"github.com/dskvich/jarvis-assistant/pkg/services"
	"github.com/dskvich/jarvis-assistant/pkg/terminal"
	"github.com/dskvich/jarvis-assistant/pkg/tts"
	"github.com/dskvich/jarvis-assistant/pkg/workers"
)

type Config struct {
	OpenAIToken           string `env:"OPEN_AI_TOKEN,required"`
	ChatModel             string `env:"CHAT_MODEL" envDefault:"gpt-4o-mini"`
	TTSVoice              string `env:"TTS_VOICE"`
	VoiceEnabled          bool   `env:"VOICE_ENABLED" envDefault:"false"`
	PgURL                 string `env:"DATABASE_URL"`
	PgHost                string `env:"DB_HOST"`
	APIServerAddr         string `env:"API_SERVER_ADDR"`
	APIToken              string `env:"API_TOKEN"`
	GoogleCredentialsPath string `env:"GOOGLE_CREDENTIALS_PATH"`
	GoogleTokenPath       string `env:"GOOGLE_TOKEN_PATH" envDefault:"token.json"`
	YoutubeAPIKey         string `env:"YOUTUBE_API_KEY"`
	NewsChannelID         string `env:"NEWS_CHANNEL_ID" envDefault:"UCnQC_G5Xsjhp9fEJKuIcrSw"`
	NewsCachePath         string `env:"NEWS_CACHE_PATH" envDefault:"youtube_cache.json"`
	DigitalOceanToken     string `env:"DO_TOKEN"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, slog.LevelInfo)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	serviceGroup, err := setupServices(ctx, cancelFn)
	if err != nil {
		return err
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return serviceGroup.Start(ctx)
}

func setupServices(ctx context.Context, shutdownFn func()) (services.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	var serviceGroup services.Group

	openAIClient, err := openai.NewClient(cfg.OpenAIToken, cfg.ChatModel)
	if err != nil {
		return nil, fmt.Errorf("creating open ai client: %w", err)
	}

	serviceGroup = append(serviceGroup,
		services.NewStartupProbe(openAIClient, cfg.ChatModel, os.Stdout, os.Stderr))

	var historyRepository services.HistoryRepository
	var apiHistoryRepository handler.HistoryProvider
	var memoryService services.Memorizer
	if cfg.PgURL != "" || cfg.PgHost != "" {
		db, err := database.NewPostgres(cfg.PgURL, cfg.PgHost)
		if err != nil {
			return nil, fmt.Errorf("creating db: %w", err)
		}
		interactionsRepository := repository.NewInteractionsRepository(db)
		historyRepository = interactionsRepository
		apiHistoryRepository = interactionsRepository
		memoryService = services.NewMemoryService(openAIClient, repository.NewMemoriesRepository(db))
	} else {
		slog.Info("no database configured, running without history and memory")
	}

	actionService, err := services.NewActionService(buildActions(ctx, cfg))
	if err != nil {
		return nil, fmt.Errorf("creating action service: %w", err)
	}

	processor := services.NewProcessor(openAIClient, actionService, historyRepository, memoryService)

	var listener workers.Listener = terminal.NewReader(os.Stdin, os.Stdout)
	var loopSpeaker workers.Speaker
	if cfg.VoiceEnabled {
		listener = converter.NewVoiceToText(&converter.MicRecorder{}, openAIClient)

		speaker, err := tts.NewSpeaker(openAIClient, cfg.TTSVoice)
		if err != nil {
			return nil, fmt.Errorf("creating speaker: %w", err)
		}
		loopSpeaker = speaker
		serviceGroup = append(serviceGroup, speaker)
	}

	assistantLoop, err := workers.NewAssistantLoop(listener, processor, loopSpeaker, os.Stdout, shutdownFn)
	if err != nil {
		return nil, fmt.Errorf("creating assistant loop: %w", err)
	}
	serviceGroup = append(serviceGroup, assistantLoop)

	if cfg.APIServerAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/api/ask", handler.NewAsk(processor))
		if apiHistoryRepository != nil {
			historyHandler := handler.NewHistory(apiHistoryRepository)
			mux.Handle("/api/history", historyHandler)
			mux.HandleFunc("/history", historyHandler.Transcript)
		}

		serviceGroup = append(serviceGroup,
			workers.NewAPIServer(cfg.APIServerAddr, middleware.TokenAuth(cfg.APIToken)(mux)))
	}

	return serviceGroup, nil
}

func buildActions(ctx context.Context, cfg Config) []services.Action {
	list := []services.Action{
		actions.NewGetTime(),
		actions.NewGetCurrentTimezone(),
		actions.NewGetLocation(),
		actions.NewGetSystemInfo(),
		actions.NewGetTopProcesses(),
	}

	if cfg.GoogleCredentialsPath != "" {
		calendarClient, err := gcal.NewClient(ctx, cfg.GoogleCredentialsPath, cfg.GoogleTokenPath)
		if err != nil {
			slog.Warn("calendar actions disabled", logger.Err(err))
		} else {
			list = append(list,
				actions.NewCalendarNextEvent(calendarClient),
				actions.NewCalendarGetEvents(calendarClient),
				actions.NewCalendarSearch(calendarClient),
			)
		}
	}

	if cfg.YoutubeAPIKey != "" {
		newsMonitor, err := news.NewMonitor(ctx, cfg.YoutubeAPIKey, cfg.NewsChannelID, cfg.NewsCachePath)
		if err != nil {
			slog.Warn("news action disabled", logger.Err(err))
		} else {
			list = append(list, actions.NewGetNews(newsMonitor))
		}
	}

	if cfg.DigitalOceanToken != "" {
		list = append(list, actions.NewGetHostingBalance(digitalocean.NewClient(cfg.DigitalOceanToken)))
	}

	return list
}
