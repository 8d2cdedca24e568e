// Package notify carries user-facing completion notices out of the core
// operations, standing in for the host platform's blocking alert dialog.
package notify

import (
	"context"

	pkgLog "apply-tracker/pkg/log"
	pkgTelegram "apply-tracker/pkg/telegram"
)

// Notifier delivers a short informational message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type logNotifier struct {
	l pkgLog.Logger
}

// NewLog returns a Notifier that writes notices to the service log.
func NewLog(l pkgLog.Logger) Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Notify(ctx context.Context, message string) error {
	n.l.Infof(ctx, "notice: %s", message)
	return nil
}

type telegramNotifier struct {
	bot    *pkgTelegram.Bot
	chatID int64
}

// NewTelegram returns a Notifier that sends notices to a Telegram chat.
func NewTelegram(bot *pkgTelegram.Bot, chatID int64) Notifier {
	return &telegramNotifier{bot: bot, chatID: chatID}
}

func (n *telegramNotifier) Notify(ctx context.Context, message string) error {
	return n.bot.SendMessage(n.chatID, message)
}
