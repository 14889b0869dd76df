package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultAPIURL is the Bot API root; the token is appended.
	DefaultAPIURL = "https://api.telegram.org/bot"
	// MaxMessageLength is the Bot API limit for one message text.
	MaxMessageLength = 4096
	// HeaderSecretToken carries the secret registered with SetWebhook.
	HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

	defaultTimeout = 15 * time.Second
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     DefaultAPIURL + token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the Bot API URL, token included, for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in HeaderSecretToken on every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	payload := SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secret,
		AllowedUpdates: []string{"message"},
	}

	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", payload, &apiResp); err != nil {
		return fmt.Errorf("telegram: failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram: setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends text with an optional parse mode (e.g. "Markdown").
// Texts over MaxMessageLength are sent as several messages.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		payload := SendMessageRequest{
			ChatID:    chatID,
			Text:      chunk,
			ParseMode: parseMode,
		}
		if err := b.call(ctx, "sendMessage", payload, nil); err != nil {
			return fmt.Errorf("telegram: failed to send message: %w", err)
		}
	}
	return nil
}

// SendChatAction shows a status such as "typing" while an answer is prepared.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	payload := ChatActionRequest{ChatID: chatID, Action: action}
	if err := b.call(ctx, "sendChatAction", payload, nil); err != nil {
		return fmt.Errorf("telegram: failed to send chat action: %w", err)
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response (status %d): %w", method, resp.StatusCode, err)
		}
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	return nil
}
