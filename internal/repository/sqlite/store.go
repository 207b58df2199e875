package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store знает только путь к файлу базы. Соединение открывается на каждую
// операцию и закрывается сразу после неё.
type Store struct {
	path        string
	busyTimeout time.Duration
}

func NewStore(path string, busyTimeout time.Duration) *Store {
	return &Store{path: path, busyTimeout: busyTimeout}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) dsn() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d", s.path, s.busyTimeout.Milliseconds())
}

func (s *Store) open(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", s.dsn())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", s.path, err)
	}
	return db, nil
}

// withDB выполняет fn на свежем соединении.
func (s *Store) withDB(ctx context.Context, fn func(db *sqlx.DB) error) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}
