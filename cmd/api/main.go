package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"canvas-assistant/config"
	_ "canvas-assistant/docs" // Swagger docs
	"canvas-assistant/internal/assistant/delivery/telegram"
	historyRepo "canvas-assistant/internal/assistant/repository"
	memoryHistory "canvas-assistant/internal/assistant/repository/memory"
	redisHistory "canvas-assistant/internal/assistant/repository/redis"
	assistantUC "canvas-assistant/internal/assistant/usecase"
	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/httpserver"
	lmsRepo "canvas-assistant/internal/lms/repository"
	canvasRepo "canvas-assistant/internal/lms/repository/canvas"
	gcalRepo "canvas-assistant/internal/lms/repository/gcalendar"
	lmsUC "canvas-assistant/internal/lms/usecase"
	"canvas-assistant/internal/middleware"
	"canvas-assistant/internal/model"
	"canvas-assistant/internal/router"
	"canvas-assistant/pkg/canvas"
	"canvas-assistant/pkg/gcalendar"
	"canvas-assistant/pkg/llmprovider"
	"canvas-assistant/pkg/log"
	pkgTelegram "canvas-assistant/pkg/telegram"
)

// @title       Canvas Assistant API
// @description Natural-language assistant over Canvas LMS data, with a cached aggregation engine and Telegram delivery.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Canvas Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Canvas URL: %s", cfg.Canvas.URL)

	// 3. LMS engine
	canvasClient, err := canvas.New(canvas.Config{
		BaseURL:     cfg.Canvas.URL,
		AccessToken: cfg.Canvas.AccessToken,
		Timeout:     cfg.Canvas.Timeout,
		PerPage:     cfg.Canvas.PerPage,
		MaxPages:    cfg.Canvas.MaxPages,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Canvas client: ", err)
		return
	}

	ttls := make(map[model.ResourceType]time.Duration, len(cfg.Cache.TTLs))
	for name, ttl := range cfg.Cache.TTLs {
		ttls[model.ResourceType(name)] = ttl
	}
	lmsCache := cache.New(cache.Config{TTLs: ttls, SweepInterval: cfg.Cache.SweepInterval}, logger)
	lmsCache.StartSweeper(ctx)

	// Google Calendar export (optional)
	var calendarRepo lmsRepo.CalendarRepository
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warnf(ctx, "→ Run `go run ./scripts/gcal-auth -credentials %s -token %s` to generate a token",
				cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		} else {
			calendarRepo = gcalRepo.New(calendarClient, gcalRepo.Config{
				CalendarID:    cfg.GoogleCalendar.CalendarID,
				Timezone:      cfg.GoogleCalendar.Timezone,
				EventDuration: cfg.GoogleCalendar.EventDuration,
			}, logger)
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	lmsUseCase := lmsUC.New(logger, canvasRepo.New(canvasClient, logger), calendarRepo, lmsCache, lmsUC.Options{})

	if user, ok := lmsUseCase.Profile(ctx); ok {
		logger.Infof(ctx, "✅ Canvas token belongs to %s", user.Name)
	} else {
		logger.Warn(ctx, "Canvas token check failed; LMS data will be empty until the token is fixed")
	}

	// 4. LLM providers
	providers, providerErrs := llmprovider.InitializeProviders(&cfg.LLM)
	for _, pErr := range providerErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", pErr)
	}
	if len(providers) == 0 {
		logger.Error(ctx, "No usable LLM provider configured")
		return
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "✅ %d LLM provider(s) initialized", len(providers))

	// 5. Conversation
	history, err := newHistoryRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		return
	}

	assistantUseCase := assistantUC.New(logger, lmsUseCase, router.New(llm, logger), llm, history, assistantUC.Options{
		ContextWindow: cfg.Session.ContextWindow,
		Timezone:      cfg.Session.Timezone,
	})

	// 6. Telegram delivery (optional)
	var telegramHandler telegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := pkgTelegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = telegram.New(logger, assistantUseCase, lmsUseCase, bot, telegram.Config{
			WebhookSecret: cfg.Telegram.WebhookSecret,
			Timezone:      cfg.Session.Timezone,
		})

		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" && cfg.Telegram.TunnelAPIURL != "" {
			publicURL, tunnelErr := detectTunnelURL(ctx, cfg.Telegram.TunnelAPIURL, tunnelAttempts, tunnelBackoff)
			if tunnelErr != nil {
				logger.Warnf(ctx, "Could not detect tunnel URL: %v", tunnelErr)
			} else {
				webhookURL = publicURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected tunnel URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin}),
		LMSUseCase:       lmsUseCase,
		AssistantUseCase: assistantUseCase,
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// newHistoryRepository builds the configured session store.
func newHistoryRepository(ctx context.Context, cfg *config.Config, logger log.Logger) (historyRepo.HistoryRepository, error) {
	opts := historyRepo.Options{MaxHistory: cfg.Session.MaxHistory, TTL: cfg.Session.TTL}

	if cfg.Session.Backend != "redis" {
		logger.Info(ctx, "Session store: memory")
		return memoryHistory.New(logger, opts, memoryHistory.DefaultMaxSessions), nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	logger.Infof(ctx, "Session store: redis at %s", cfg.Redis.Addr)

	return redisHistory.New(logger, client, cfg.Redis.KeyPrefix, opts), nil
}
