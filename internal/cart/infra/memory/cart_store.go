// Package memory keeps cart records in process memory. Records are held in
// their encoded form so loads go through the same codec as the durable
// stores.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dwikikusuma/plantshop/internal/cart/domain"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/record"
)

type CartStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	codec   record.Codec
}

func NewCartStore(codec record.Codec) *CartStore {
	return &CartStore{
		records: make(map[string][]byte),
		codec:   codec,
	}
}

func (s *CartStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}

	s.mu.RLock()
	payload, ok := s.records[sessionID]
	s.mu.RUnlock()
	if !ok {
		return domain.Cart{}, nil
	}
	return s.codec.Decode(payload)
}

func (s *CartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}

	payload, err := s.codec.Encode(cart)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records[sessionID] = payload
	s.mu.Unlock()
	return nil
}

// Put stores a raw record, bypassing the codec.
func (s *CartStore) Put(sessionID string, payload []byte) {
	s.mu.Lock()
	s.records[sessionID] = payload
	s.mu.Unlock()
}

func (s *CartStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *CartStore) Close() error {
	return nil
}
