package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/plantshop/internal/cart/app"
	catalogapp "github.com/dwikikusuma/plantshop/internal/catalog/app"
)

// CatalogServiceReader lets the cart look up products without depending on
// the catalog's domain types.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID int) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return cartapp.Product{}, cartapp.ErrProductNotFound
	}
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		Currency: p.Price.Currency,
		Amount:   p.Price.Amount,
		Image:    p.Image,
	}, nil
}
