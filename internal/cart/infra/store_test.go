package infra

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dwikikusuma/plantshop/internal/cart/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreDrivers(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite", "memory"} {
		t.Run(driver, func(t *testing.T) {
			store, err := OpenStore(driver, filepath.Join(t.TempDir(), "carts.db"), "USD")
			require.NoError(t, err)
			defer store.Close()

			ctx := context.Background()
			require.NoError(t, store.Ping(ctx))

			cart := domain.Cart{Items: []domain.LineItem{
				{ID: 1, Name: "Monstera Deliciosa", Price: domain.Money{Currency: "USD", Amount: 2999}, Image: "images/plant1.svg", Quantity: 2},
			}}
			require.NoError(t, store.Save(ctx, "s1", cart))

			got, err := store.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, cart, got)
		})
	}
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	_, err := OpenStore("mongo", "x", "USD")
	require.Error(t, err)
}
