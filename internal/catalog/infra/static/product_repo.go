// Package static serves the storefront's fixed plant catalog from memory.
package static

import (
	"context"
	"slices"

	"github.com/dwikikusuma/plantshop/internal/catalog/app"
	"github.com/dwikikusuma/plantshop/internal/catalog/domain"
)

type ProductRepo struct {
	products []domain.Product
}

// NewProductRepo returns the six-plant catalog priced in currency.
func NewProductRepo(currency string) *ProductRepo {
	price := func(cents int64) domain.Money {
		return domain.Money{Currency: currency, Amount: cents}
	}

	return &ProductRepo{products: []domain.Product{
		{ID: 1, Name: "Monstera Deliciosa", Price: price(2999), Image: "images/plant1.svg", Category: domain.CategoryIndoor},
		{ID: 2, Name: "Peace Lily", Price: price(2499), Image: "images/plant2.svg", Category: domain.CategoryIndoor},
		{ID: 3, Name: "Echeveria", Price: price(1499), Image: "images/plant3.svg", Category: domain.CategorySucculent},
		{ID: 4, Name: "Aloe Vera", Price: price(1999), Image: "images/plant4.svg", Category: domain.CategorySucculent},
		{ID: 5, Name: "Orchid", Price: price(3499), Image: "images/plant5.svg", Category: domain.CategoryFlowering},
		{ID: 6, Name: "Anthurium", Price: price(2799), Image: "images/plant6.svg", Category: domain.CategoryFlowering},
	}}
}

func (r *ProductRepo) Get(ctx context.Context, id int) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

// List returns a copy so callers cannot mutate the catalog.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.products), nil
}
