package telegram

import (
	"employee-directory/internal/delivery/telegram/flows"
	"employee-directory/internal/delivery/telegram/keyboards"
	"employee-directory/internal/delivery/telegram/router"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

// Handler — бот только для чтения: изменения идут через HTTP API.
type Handler struct {
	Bot       *telebot.Bot
	Directory *flows.Directory
	Logger    *zap.Logger
}

func (h *Handler) Register() {
	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/employees", h.handleEmployees)

	callbacks := router.New(h.Logger)
	flows.RegisterDirectory(callbacks, h.Directory)
	callbacks.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	return c.Send("Справочник сотрудников. Команда /employees покажет список.")
}

func (h *Handler) handleEmployees(c telebot.Context) error {
	text, err := h.Directory.Text()
	if err != nil {
		h.Logger.Error("не удалось получить сотрудников", zap.Error(err))
		return c.Send(text)
	}
	return c.Send(text, keyboards.BuildDirectoryKeyboard())
}
