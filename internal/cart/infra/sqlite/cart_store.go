// Package sqlite stores cart records in a SQLite table keyed by session id
// and record key.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dwikikusuma/plantshop/internal/cart/domain"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/record"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS cart_records (
	session_id TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (session_id, key)
)`

type CartStore struct {
	sqlDB *sql.DB
	codec record.Codec
}

// Open opens the SQLite file at path and creates the records table.
func Open(path string, codec record.Codec) (*CartStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create cart_records: %w", err)
	}
	return &CartStore{sqlDB: sqlDB, codec: codec}, nil
}

func (s *CartStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *CartStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Cart{}, fmt.Errorf("storage is not configured")
	}

	var payload string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM cart_records WHERE session_id = ? AND key = ?`,
		sessionID, record.Key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("get cart record: %w", err)
	}
	return s.codec.Decode([]byte(payload))
}

func (s *CartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}

	payload, err := s.codec.Encode(cart)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO cart_records (session_id, key, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (session_id, key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		sessionID, record.Key, string(payload), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put cart record: %w", err)
	}
	return nil
}

func (s *CartStore) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}
