package app

import (
	"context"

	"github.com/dwikikusuma/plantshop/internal/cart/domain"
)

// Store persists one cart record per shopper session. Load returns an empty
// cart when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int) (Product, error)
}

type Product struct {
	ID       int
	Name     string
	Currency string
	Amount   int64
	Image    string
}
