package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"canvas-assistant/internal/assistant"
	"canvas-assistant/internal/lms"
	"canvas-assistant/pkg/datemath"
	pkgLog "canvas-assistant/pkg/log"
)

// DefaultProcessTimeout bounds the background work for one update.
const DefaultProcessTimeout = 2 * time.Minute

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the Bot API client the handler uses.
// *pkg/telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// Config carries the handler's settings.
type Config struct {
	// WebhookSecret, when set, must match the secret header of every update.
	WebhookSecret  string
	Timezone       string
	ProcessTimeout time.Duration
	Now            func() time.Time
}

type handler struct {
	l         pkgLog.Logger
	uc        assistant.UseCase
	lms       lms.UseCase
	bot       Sender
	formatter *datemath.Formatter
	secret    string
	timeout   time.Duration
	now       func() time.Time
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, lmsUC lms.UseCase, bot Sender, cfg Config) Handler {
	formatter, err := datemath.NewFormatter(cfg.Timezone)
	if err != nil {
		formatter, _ = datemath.NewFormatter("UTC")
	}
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = DefaultProcessTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &handler{
		l:         l,
		uc:        uc,
		lms:       lmsUC,
		bot:       bot,
		formatter: formatter,
		secret:    cfg.WebhookSecret,
		timeout:   cfg.ProcessTimeout,
		now:       cfg.Now,
	}
}
