package keyboards

import "gopkg.in/telebot.v3"

const RefreshKey = "emp_refresh"

// BuildDirectoryKeyboard — кнопка обновления под списком сотрудников.
func BuildDirectoryKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	btnRefresh := markup.Data("🔄 Обновить", RefreshKey)
	markup.Inline(markup.Row(btnRefresh))
	return markup
}
