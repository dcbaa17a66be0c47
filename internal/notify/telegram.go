package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"clean-backend/internal/config"
	"clean-backend/internal/metrics"

	"github.com/go-resty/resty/v2"
)

// Provider sends one notification message to a channel.
type Provider interface {
	Send(ctx context.Context, text string) error
}

// TelegramProvider posts messages to a Telegram chat via the Bot API.
type TelegramProvider struct {
	client   *resty.Client
	botToken string
	chatID   string
}

func NewTelegramProvider(cfg *config.Config) *TelegramProvider {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second)

	return &TelegramProvider{
		client:   client,
		botToken: cfg.Telegram.BotToken,
		chatID:   cfg.Telegram.ChatID,
	}
}

// Configured reports whether bot credentials are present.
func (p *TelegramProvider) Configured() bool {
	return p.botToken != "" && p.chatID != ""
}

func (p *TelegramProvider) Send(ctx context.Context, text string) error {
	if !p.Configured() {
		return fmt.Errorf("telegram not configured")
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", p.botToken)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"chat_id":    p.chatID,
			"text":       text,
			"parse_mode": "HTML",
		}).
		Post(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("telegram API returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// Dispatcher runs notification sends in the background so request handlers
// never wait on the Telegram API.
type Dispatcher struct {
	provider Provider
}

func NewDispatcher(provider Provider) *Dispatcher {
	return &Dispatcher{provider: provider}
}

// Dispatch fires the send in a goroutine. Failures are logged and counted,
// never surfaced to the caller.
func (d *Dispatcher) Dispatch(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := d.provider.Send(ctx, text); err != nil {
			metrics.NotificationsFailed.Inc()
			log.Printf("[Notify] send failed: %v", err)
		}
	}()
}
