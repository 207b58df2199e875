package router

import (
	"strings"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter раскидывает inline-callback'и по ключу до '|'.
type CallbackRouter struct {
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

func New(logger *zap.Logger) *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), logger: logger}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := ParseCallback(c.Data())
	r.logger.Debug("callback", zap.String("key", key), zap.String("payload", payload))
	// убираем часики на кнопке
	_ = c.Respond()

	h, ok := r.lookup(key)
	if !ok {
		return false, nil
	}
	return true, h(c, payload)
}

func (r *CallbackRouter) lookup(key string) (HandlerFunc, bool) {
	h, ok := r.handlers[key]
	return h, ok
}

// ParseCallback нормализует данные кнопки: срезает префикс "\f" и делит по '|'.
func ParseCallback(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key = raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		key = raw[:i]
		payload = raw[i+1:]
	}
	return key, payload
}
