package watchdog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Notifier delivers a plain-text message to the user.
type Notifier interface {
	Notify(ctx context.Context, msg string) error
}

// LogNotifier writes messages to the application log.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) Notify(_ context.Context, msg string) error {
	n.Log.Info().Str("channel", "log").Msg(msg)
	return nil
}

// TelegramNotifier sends messages to one Telegram chat.
type TelegramNotifier struct {
	Bot  *tele.Bot
	Chat tele.Recipient
}

// NewTelegramNotifier creates an offline bot that only sends messages; it never polls for updates.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, errors.New("telegram: token and chat id are required")
	}
	b, err := tele.NewBot(tele.Settings{Token: token, Offline: true})
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramNotifier{Bot: b, Chat: &tele.Chat{ID: chatID}}, nil
}

func (n *TelegramNotifier) Notify(_ context.Context, msg string) error {
	if _, err := n.Bot.Send(n.Chat, msg); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	return nil
}

// MultiNotifier fans a message out to every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, msg string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
