// Package infra picks the cart store driver named in configuration.
package infra

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/plantshop/internal/cart/app"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/bolt"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/memory"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/record"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/sqlite"
)

// Store is a cart store that can report its health and be closed.
type Store interface {
	app.Store
	Ping(ctx context.Context) error
	Close() error
}

func OpenStore(driver, path, currency string) (Store, error) {
	codec := record.NewCodec(currency)
	switch driver {
	case "bolt":
		s, err := bolt.Open(path, codec)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.Open(path, codec)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return memory.NewCartStore(codec), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
