package service

import (
	"context"

	"employee-directory/internal/domain"
)

type ChangeKind string

const (
	EmployeeAdded   ChangeKind = "added"
	EmployeeUpdated ChangeKind = "updated"
	EmployeeDeleted ChangeKind = "deleted"
)

// ChangeEvent описывает успешное изменение справочника.
type ChangeEvent struct {
	Kind  ChangeKind
	ID    int64
	Input domain.EmployeeInput
}

// Notifier не должен блокировать запрос и не возвращает ошибок.
type Notifier interface {
	Notify(ev ChangeEvent)
}

type EmployeeService struct {
	Repo     domain.EmployeeRepo
	Notifier Notifier
}

func NewEmployeeService(repo domain.EmployeeRepo, notifier Notifier) *EmployeeService {
	return &EmployeeService{Repo: repo, Notifier: notifier}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.Repo.ListAll(ctx)
}

func (s *EmployeeService) AddEmployee(ctx context.Context, in domain.EmployeeInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	id, err := s.Repo.Insert(ctx, in)
	if err != nil {
		return 0, err
	}
	s.notify(ChangeEvent{Kind: EmployeeAdded, ID: id, Input: in})
	return id, nil
}

// UpdateEmployee: несуществующий id не считается ошибкой.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, in domain.EmployeeInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	n, err := s.Repo.Update(ctx, id, in)
	if err != nil {
		return err
	}
	if n > 0 {
		s.notify(ChangeEvent{Kind: EmployeeUpdated, ID: id, Input: in})
	}
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		s.notify(ChangeEvent{Kind: EmployeeDeleted, ID: id})
	}
	return nil
}

func (s *EmployeeService) notify(ev ChangeEvent) {
	if s.Notifier != nil {
		s.Notifier.Notify(ev)
	}
}
