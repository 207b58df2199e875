// Package telegramtest содержит подделку telebot.Context для тестов обработчиков.
package telegramtest

import "gopkg.in/telebot.v3"

// Sent — одно отправленное или отредактированное сообщение.
type Sent struct {
	Text   string
	Edited bool
	Markup *telebot.ReplyMarkup
}

// Context реализует только то, что трогают наши обработчики.
// Вызов любого другого метода упадёт на nil-интерфейсе.
type Context struct {
	telebot.Context

	CallbackData string
	EditErr      error
	Responded    bool
	Messages     []Sent
}

func (c *Context) Data() string {
	return c.CallbackData
}

func (c *Context) Respond(resp ...*telebot.CallbackResponse) error {
	c.Responded = true
	return nil
}

func (c *Context) Send(what interface{}, opts ...interface{}) error {
	c.Messages = append(c.Messages, Sent{Text: what.(string), Markup: markupOf(opts)})
	return nil
}

func (c *Context) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Messages = append(c.Messages, Sent{Text: what.(string), Edited: true, Markup: markupOf(opts)})
	return nil
}

// Last возвращает последнее сообщение или нулевое значение.
func (c *Context) Last() Sent {
	if len(c.Messages) == 0 {
		return Sent{}
	}
	return c.Messages[len(c.Messages)-1]
}

func markupOf(opts []interface{}) *telebot.ReplyMarkup {
	for _, o := range opts {
		if m, ok := o.(*telebot.ReplyMarkup); ok {
			return m
		}
	}
	return nil
}
