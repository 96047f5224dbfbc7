package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/dwikikusuma/plantshop/internal/cart/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	carts   map[string]domain.Cart
	saves   int
	loadErr error
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{carts: make(map[string]domain.Cart)}
}

func (f *fakeStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	if f.loadErr != nil {
		return domain.Cart{}, f.loadErr
	}
	c := f.carts[sessionID]
	return domain.Cart{Items: slices.Clone(c.Items)}, nil
}

func (f *fakeStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.carts[sessionID] = domain.Cart{Items: slices.Clone(cart.Items)}
	return nil
}

type fakeCatalog map[int]Product

func (f fakeCatalog) GetProduct(ctx context.Context, id int) (Product, error) {
	p, ok := f[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

var plants = fakeCatalog{
	1: {ID: 1, Name: "Monstera Deliciosa", Currency: "USD", Amount: 2999, Image: "images/plant1.svg"},
	2: {ID: 2, Name: "Peace Lily", Currency: "USD", Amount: 2499, Image: "images/plant2.svg"},
	3: {ID: 3, Name: "Echeveria", Currency: "USD", Amount: 1499, Image: "images/plant3.svg"},
}

func openSession(t *testing.T, store *fakeStore) (*Service, *Session) {
	t.Helper()
	svc := NewService(store, plants)
	sess, err := svc.Open(context.Background(), "shopper-1")
	require.NoError(t, err)
	return svc, sess
}

func TestOpen(t *testing.T) {
	t.Run("blank session -> invalid", func(t *testing.T) {
		svc := NewService(newFakeStore(), plants)
		_, err := svc.Open(context.Background(), "  ")
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("nothing stored -> empty cart", func(t *testing.T) {
		_, sess := openSession(t, newFakeStore())
		assert.True(t, sess.Cart.IsEmpty())
		assert.Equal(t, 0, sess.Count())
	})

	t.Run("load error propagates", func(t *testing.T) {
		store := newFakeStore()
		store.loadErr = errors.New("unexpected end of JSON input")
		svc := NewService(store, plants)
		_, err := svc.Open(context.Background(), "shopper-1")
		require.ErrorIs(t, err, store.loadErr)
	})
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("same product twice -> one line with quantity 2", func(t *testing.T) {
		store := newFakeStore()
		svc, sess := openSession(t, store)

		require.NoError(t, svc.AddToCart(ctx, sess, 1))
		require.NoError(t, svc.AddToCart(ctx, sess, 1))

		require.Len(t, sess.Cart.Items, 1)
		assert.Equal(t, 2, sess.Cart.Items[0].Quantity)
		assert.Equal(t, 2, sess.Count())
		assert.Equal(t, 2, store.saves)
	})

	t.Run("copies display fields", func(t *testing.T) {
		svc, sess := openSession(t, newFakeStore())
		require.NoError(t, svc.AddToCart(ctx, sess, 2))

		assert.Equal(t, domain.LineItem{
			ID:       2,
			Name:     "Peace Lily",
			Price:    domain.Money{Currency: "USD", Amount: 2499},
			Image:    "images/plant2.svg",
			Quantity: 1,
		}, sess.Cart.Items[0])
	})

	t.Run("unknown product -> no-op without save", func(t *testing.T) {
		store := newFakeStore()
		svc, sess := openSession(t, store)

		require.NoError(t, svc.AddToCart(ctx, sess, 42))
		require.NoError(t, svc.AddToCart(ctx, sess, 0))
		assert.True(t, sess.Cart.IsEmpty())
		assert.Zero(t, store.saves)
	})

	t.Run("insertion order is add order", func(t *testing.T) {
		svc, sess := openSession(t, newFakeStore())
		for _, id := range []int{3, 1, 2, 1} {
			require.NoError(t, svc.AddToCart(ctx, sess, id))
		}
		ids := make([]int, 0, len(sess.Cart.Items))
		for _, it := range sess.Cart.Items {
			ids = append(ids, it.ID)
		}
		assert.Equal(t, []int{3, 1, 2}, ids)
	})

	t.Run("save error propagates", func(t *testing.T) {
		store := newFakeStore()
		svc, sess := openSession(t, store)
		store.saveErr = errors.New("disk full")
		err := svc.AddToCart(ctx, sess, 1)
		require.ErrorIs(t, err, store.saveErr)
	})
}

func TestQuantityControls(t *testing.T) {
	ctx := context.Background()

	t.Run("increase absent -> no-op", func(t *testing.T) {
		store := newFakeStore()
		svc, sess := openSession(t, store)
		require.NoError(t, svc.IncreaseQuantity(ctx, sess, 1))
		assert.True(t, sess.Cart.IsEmpty())
		assert.Zero(t, store.saves)
	})

	t.Run("increase then decrease", func(t *testing.T) {
		svc, sess := openSession(t, newFakeStore())
		require.NoError(t, svc.AddToCart(ctx, sess, 1))
		require.NoError(t, svc.IncreaseQuantity(ctx, sess, 1))
		require.NoError(t, svc.IncreaseQuantity(ctx, sess, 1))
		require.NoError(t, svc.DecreaseQuantity(ctx, sess, 1))

		item, ok := sess.Cart.Item(1)
		require.True(t, ok)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("decrease to zero removes the item", func(t *testing.T) {
		store := newFakeStore()
		svc, sess := openSession(t, store)
		require.NoError(t, svc.AddToCart(ctx, sess, 1))
		require.NoError(t, svc.AddToCart(ctx, sess, 2))
		require.NoError(t, svc.DecreaseQuantity(ctx, sess, 1))

		assert.False(t, sess.Cart.Has(1))
		require.Len(t, sess.Cart.Items, 1)
		assert.False(t, store.carts["shopper-1"].Has(1))
	})

	t.Run("decrease absent -> no-op", func(t *testing.T) {
		store := newFakeStore()
		svc, sess := openSession(t, store)
		require.NoError(t, svc.DecreaseQuantity(ctx, sess, 3))
		assert.Zero(t, store.saves)
	})

	t.Run("remove only item -> empty", func(t *testing.T) {
		svc, sess := openSession(t, newFakeStore())
		require.NoError(t, svc.AddToCart(ctx, sess, 3))
		require.NoError(t, svc.RemoveFromCart(ctx, sess, 3))
		assert.True(t, sess.Cart.IsEmpty())
	})

	t.Run("clear empties every line", func(t *testing.T) {
		store := newFakeStore()
		svc, sess := openSession(t, store)
		require.NoError(t, svc.AddToCart(ctx, sess, 1))
		require.NoError(t, svc.AddToCart(ctx, sess, 2))
		require.NoError(t, svc.Clear(ctx, sess))
		assert.True(t, sess.Cart.IsEmpty())
		assert.True(t, store.carts["shopper-1"].IsEmpty())
	})
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	svc, sess := openSession(t, newFakeStore())

	require.NoError(t, svc.AddToCart(ctx, sess, 3))
	require.NoError(t, svc.IncreaseQuantity(ctx, sess, 3))
	require.NoError(t, svc.AddToCart(ctx, sess, 2))

	total := sess.Cart.Total()
	assert.Equal(t, int64(5497), total.Amount)
	assert.Equal(t, "54.97", total.Decimal().StringFixed(2))
	assert.Equal(t, 3, sess.Count())
}

func TestReopenRestoresCart(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc, sess := openSession(t, store)

	require.NoError(t, svc.AddToCart(ctx, sess, 2))
	require.NoError(t, svc.AddToCart(ctx, sess, 1))
	require.NoError(t, svc.IncreaseQuantity(ctx, sess, 1))

	again, err := svc.Open(ctx, "shopper-1")
	require.NoError(t, err)
	assert.Equal(t, sess.Cart, again.Cart)

	other, err := svc.Open(ctx, "shopper-2")
	require.NoError(t, err)
	assert.True(t, other.Cart.IsEmpty())
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 11))
	svc, sess := openSession(t, newFakeStore())

	for step := 0; step < 500; step++ {
		id := rng.IntN(5) // includes ids the catalog does not know
		var err error
		switch rng.IntN(4) {
		case 0:
			err = svc.AddToCart(ctx, sess, id)
		case 1:
			err = svc.IncreaseQuantity(ctx, sess, id)
		case 2:
			err = svc.DecreaseQuantity(ctx, sess, id)
		case 3:
			err = svc.RemoveFromCart(ctx, sess, id)
		}
		require.NoError(t, err)

		seen := make(map[int]bool)
		var want int64
		for _, it := range sess.Cart.Items {
			require.GreaterOrEqual(t, it.Quantity, 1, "step %d: item %d", step, it.ID)
			require.False(t, seen[it.ID], "step %d: duplicate item %d", step, it.ID)
			seen[it.ID] = true
			want += it.Price.Amount * int64(it.Quantity)
		}
		require.Equal(t, want, sess.Cart.Total().Amount)
	}
}
