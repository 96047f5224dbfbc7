package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/plantshop/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// ListProducts returns the catalog in display order. An empty or unknown
// category returns every product.
func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	cat := domain.Category(strings.ToLower(strings.TrimSpace(category)))
	if !cat.Valid() {
		return products, nil
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out, nil
}
