package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"canvas-assistant/internal/assistant"
	"canvas-assistant/internal/model"
	pkgLog "canvas-assistant/pkg/log"
	pkgResponse "canvas-assistant/pkg/response"
	pkgTelegram "canvas-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and answers in a background goroutine:
// classification, LMS fan-out and generation can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret from %s", c.ClientIP())
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestIDFromContext(ctx)

	go func() {
		// Detached from the request context, which ends with the response.
		bgCtx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), requestID), h.timeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgProcessError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	sessionID := fmt.Sprintf("%s%d", sessionPrefix, chatID)
	text := strings.TrimSpace(msg.Text)

	switch command(text) {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, chatID, msgStart, parseModeMarkdown)
	case "/help":
		return h.bot.SendMessageWithMode(ctx, chatID, msgHelp, parseModeMarkdown)
	case "/reset":
		if err := h.uc.Reset(ctx, sessionID); err != nil {
			return fmt.Errorf("reset %s: %w", sessionID, err)
		}
		return h.bot.SendMessage(ctx, chatID, msgReset)
	case "/deadlines":
		return h.bot.SendMessageWithMode(ctx, chatID, h.formatDeadlines(h.lms.UpcomingDeadlines(ctx)), parseModeMarkdown)
	}

	if err := h.bot.SendChatAction(ctx, chatID, actionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	sc := model.Scope{UserID: sessionID, Channel: "telegram"}
	if msg.From != nil {
		sc.Username = msg.From.Username
	}

	out, err := h.uc.Ask(ctx, sc, assistant.AskInput{SessionID: sessionID, Query: text})
	if err != nil {
		return fmt.Errorf("ask: %w", err)
	}

	// Generated answers are not guaranteed to be valid Telegram Markdown.
	if err := h.bot.SendMessageWithMode(ctx, chatID, out.Answer, parseModeMarkdown); err != nil {
		h.l.Warnf(ctx, "telegram handler: markdown send failed, retrying as plain text: %v", err)
		return h.bot.SendMessage(ctx, chatID, out.Answer)
	}
	return nil
}

// command returns the bot command of text without any @botname suffix, or
// "" when text is not a command.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
