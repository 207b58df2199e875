package flows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"employee-directory/internal/app/service"
	"employee-directory/internal/delivery/telegram/keyboards"
	"employee-directory/internal/delivery/telegram/middleware"
	"employee-directory/internal/delivery/telegram/router"
	"employee-directory/internal/domain"

	"gopkg.in/telebot.v3"
)

const listFailedText = "Не удалось получить список сотрудников."

// Directory читает справочник в пуле воркеров, чтобы цикл обновлений
// бота не ждал блокировку SQLite дольше Timeout.
type Directory struct {
	Employees *service.EmployeeService
	Async     *service.AsyncService
	Timeout   time.Duration
}

// Text возвращает текст для чата; при ошибке — текст для пользователя и саму ошибку.
func (d *Directory) Text() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	v, err := d.Async.SubmitAsync(ctx, func() (any, error) {
		return DirectoryText(ctx, d.Employees)
	})
	if err != nil {
		return listFailedText, err
	}
	return v.(string), nil
}

func RegisterDirectory(r *router.CallbackRouter, dir *Directory) {
	r.Register(keyboards.RefreshKey, func(c telebot.Context, payload string) error {
		text, err := dir.Text()
		if err != nil {
			return c.Send(text)
		}
		return middleware.EditOrSend(c, text, keyboards.BuildDirectoryKeyboard())
	})
}

// DirectoryText читает справочник и форматирует его для чата.
func DirectoryText(ctx context.Context, employees *service.EmployeeService) (string, error) {
	list, err := employees.ListEmployees(ctx)
	if err != nil {
		return listFailedText, err
	}
	return FormatEmployees(list), nil
}

func FormatEmployees(employees []domain.Employee) string {
	if len(employees) == 0 {
		return "Сотрудники не найдены."
	}
	var b strings.Builder
	b.WriteString("Список сотрудников:\n")
	for _, e := range employees {
		fmt.Fprintf(&b, "ID: %d, %s <%s> (%s)\n", e.ID, e.Name, e.Email, e.Role)
	}
	return b.String()
}

func FormatEvent(ev service.ChangeEvent) string {
	switch ev.Kind {
	case service.EmployeeAdded:
		return fmt.Sprintf("➕ Добавлен сотрудник #%d: %s <%s> (%s)", ev.ID, ev.Input.Name, ev.Input.Email, ev.Input.Role)
	case service.EmployeeUpdated:
		return fmt.Sprintf("✏️ Обновлён сотрудник #%d: %s <%s> (%s)", ev.ID, ev.Input.Name, ev.Input.Email, ev.Input.Role)
	case service.EmployeeDeleted:
		return fmt.Sprintf("🗑 Удалён сотрудник #%d", ev.ID)
	}
	return fmt.Sprintf("Изменение %s, сотрудник #%d", ev.Kind, ev.ID)
}
