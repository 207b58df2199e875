package telegram

import (
	"employee-directory/internal/app/service"
	"employee-directory/internal/delivery/telegram/flows"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

// Sender — часть *telebot.Bot, нужная для уведомлений.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// Notifier отправляет изменения справочника в чат через пул воркеров.
type Notifier struct {
	Sender Sender
	ChatID int64
	Async  *service.AsyncService
	Logger *zap.Logger
}

func NewNotifier(sender Sender, chatID int64, async *service.AsyncService, logger *zap.Logger) *Notifier {
	return &Notifier{Sender: sender, ChatID: chatID, Async: async, Logger: logger}
}

func (n *Notifier) Notify(ev service.ChangeEvent) {
	text := flows.FormatEvent(ev)
	queued := n.Async.Go(func() error {
		if _, err := n.Sender.Send(telebot.ChatID(n.ChatID), text); err != nil {
			n.Logger.Warn("уведомление не отправлено", zap.Int64("employee_id", ev.ID), zap.Error(err))
			return err
		}
		return nil
	})
	if !queued {
		n.Logger.Warn("очередь уведомлений переполнена, событие пропущено",
			zap.String("kind", string(ev.Kind)), zap.Int64("employee_id", ev.ID))
	}
}
