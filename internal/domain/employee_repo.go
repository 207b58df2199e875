package domain

import "context"

// EmployeeRepo — хранилище сотрудников. Каждый вызов самостоятельный,
// общих транзакций между вызовами нет.
type EmployeeRepo interface {
	ListAll(ctx context.Context) ([]Employee, error)
	Insert(ctx context.Context, in EmployeeInput) (int64, error)
	Update(ctx context.Context, id int64, in EmployeeInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type Employee struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Role  string `db:"role" json:"role"`
}

// EmployeeInput — тело запросов создания и обновления.
type EmployeeInput struct {
	Name  string `db:"name" json:"name" validate:"required,notblank"`
	Email string `db:"email" json:"email" validate:"required,notblank"`
	Role  string `db:"role" json:"role" validate:"required,notblank"`
}

// Validate проверяет только наличие полей, формат email не проверяется.
func (in EmployeeInput) Validate() error {
	return validateStruct(in)
}
