// Package localstore is the service-side stand-in for the browser's
// local storage: logical string keys mapping to JSON documents, backed
// by a SQLite file.
package localstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Uday-Kumarr/clickncut-main/util/database"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type store struct{ db *database.DB }

func New(db *database.DB) Store { return &store{db} }

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	var v string
	err := s.db.SQL.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (s *store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.SQL.ExecContext(ctx, `
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	return err
}

func (s *store) Delete(ctx context.Context, key string) error {
	_, err := s.db.SQL.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}
