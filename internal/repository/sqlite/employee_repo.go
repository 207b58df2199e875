package sqlite

import (
	"context"

	"employee-directory/internal/domain"

	"github.com/jmoiron/sqlx"
)

const (
	selectEmployees = `SELECT id, name, email, role FROM employees ORDER BY id`
	insertEmployee  = `INSERT INTO employees (name, email, role) VALUES (:name, :email, :role)`
	updateEmployee  = `UPDATE employees SET name = :name, email = :email, role = :role WHERE id = :id`
	deleteEmployee  = `DELETE FROM employees WHERE id = ?`
)

type SqliteEmployeeRepo struct {
	store *Store
}

func NewSqliteEmployeeRepo(store *Store) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{store: store}
}

func (r *SqliteEmployeeRepo) ListAll(ctx context.Context) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	err := r.store.withDB(ctx, func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &employees, selectEmployees)
	})
	if err != nil {
		return nil, &domain.StorageError{Op: "list", Err: err}
	}
	return employees, nil
}

func (r *SqliteEmployeeRepo) Insert(ctx context.Context, in domain.EmployeeInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := r.store.withDB(ctx, func(db *sqlx.DB) error {
		res, err := db.NamedExecContext(ctx, insertEmployee, in)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, &domain.StorageError{Op: "insert", Err: err}
	}
	return id, nil
}

// Update перезаписывает все три поля. Отсутствующий id — не ошибка, вернётся 0.
func (r *SqliteEmployeeRepo) Update(ctx context.Context, id int64, in domain.EmployeeInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	row := domain.Employee{ID: id, Name: in.Name, Email: in.Email, Role: in.Role}
	var affected int64
	err := r.store.withDB(ctx, func(db *sqlx.DB) error {
		res, err := db.NamedExecContext(ctx, updateEmployee, row)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, &domain.StorageError{Op: "update", Err: err}
	}
	return affected, nil
}

func (r *SqliteEmployeeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.store.withDB(ctx, func(db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, deleteEmployee, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, &domain.StorageError{Op: "delete", Err: err}
	}
	return affected, nil
}
