// Package bolt stores cart records in a bbolt file, one nested bucket per
// shopper session.
package bolt

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dwikikusuma/plantshop/internal/cart/domain"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/record"
	"go.etcd.io/bbolt"
)

const sessionsBucket = "sessions"

type CartStore struct {
	db    *bbolt.DB
	codec record.Codec
}

// Open opens (or creates) the bbolt file at path.
func Open(path string, codec record.Codec) (*CartStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &CartStore{db: db, codec: codec}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *CartStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *CartStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	if s == nil || s.db == nil {
		return domain.Cart{}, fmt.Errorf("storage is not configured")
	}

	var payload []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		sessions := tx.Bucket([]byte(sessionsBucket))
		if sessions == nil {
			return fmt.Errorf("sessions bucket is missing")
		}
		bucket := sessions.Bucket([]byte(sessionID))
		if bucket == nil {
			return nil
		}
		// bbolt values are only valid inside the transaction.
		if v := bucket.Get([]byte(record.Key)); v != nil {
			payload = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}
	if payload == nil {
		return domain.Cart{}, nil
	}
	return s.codec.Decode(payload)
}

func (s *CartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}

	payload, err := s.codec.Encode(cart)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		sessions := tx.Bucket([]byte(sessionsBucket))
		if sessions == nil {
			return fmt.Errorf("sessions bucket is missing")
		}
		bucket, err := sessions.CreateBucketIfNotExists([]byte(sessionID))
		if err != nil {
			return fmt.Errorf("create session bucket: %w", err)
		}
		return bucket.Put([]byte(record.Key), payload)
	})
}

// Ping reports whether the database is open and its buckets exist.
func (s *CartStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(sessionsBucket)) == nil {
			return fmt.Errorf("sessions bucket is missing")
		}
		return nil
	})
}

func (s *CartStore) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(sessionsBucket)); err != nil {
			return fmt.Errorf("create sessions bucket: %w", err)
		}
		return nil
	})
}
