package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/plantshop/internal/cart/domain"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	// ErrCorruptCart wraps any failure to decode a stored cart record.
	ErrCorruptCart = errors.New("corrupt cart record")
	// ErrProductNotFound is returned by CatalogReader implementations for
	// ids the catalog does not know.
	ErrProductNotFound = errors.New("product not found")
)

// Session is the cart state owned by one shopper session. Operations
// mutate Cart in place and persist it before returning.
type Session struct {
	ID   string
	Cart domain.Cart
}

func (s *Session) Count() int {
	return s.Cart.Count()
}

type Service struct {
	store   Store
	catalog CatalogReader
}

func NewService(store Store, catalog CatalogReader) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
	}
}

// Open hydrates the session's cart from the store.
func (s *Service) Open(ctx context.Context, sessionID string) (*Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Session{ID: sessionID, Cart: cart}, nil
}

// AddToCart copies the product's display fields into a new line item, or
// bumps the quantity of the existing one. Unknown products are ignored.
func (s *Service) AddToCart(ctx context.Context, sess *Session, productID int) error {
	if productID <= 0 {
		return nil
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get product %d: %w", productID, err)
	}

	sess.Cart.Add(domain.LineItem{
		ID:    product.ID,
		Name:  product.Name,
		Price: domain.Money{Currency: product.Currency, Amount: product.Amount},
		Image: product.Image,
	})
	return s.save(ctx, sess)
}

func (s *Service) IncreaseQuantity(ctx context.Context, sess *Session, itemID int) error {
	if !sess.Cart.Increase(itemID) {
		return nil
	}
	return s.save(ctx, sess)
}

// DecreaseQuantity removes the line item instead of storing a quantity
// below one.
func (s *Service) DecreaseQuantity(ctx context.Context, sess *Session, itemID int) error {
	qty, ok := sess.Cart.Decrease(itemID)
	if !ok {
		return nil
	}
	if qty <= 0 {
		return s.RemoveFromCart(ctx, sess, itemID)
	}
	return s.save(ctx, sess)
}

func (s *Service) RemoveFromCart(ctx context.Context, sess *Session, itemID int) error {
	sess.Cart.Remove(itemID)
	return s.save(ctx, sess)
}

func (s *Service) Clear(ctx context.Context, sess *Session) error {
	sess.Cart.Clear()
	return s.save(ctx, sess)
}

func (s *Service) save(ctx context.Context, sess *Session) error {
	if err := s.store.Save(ctx, sess.ID, sess.Cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
