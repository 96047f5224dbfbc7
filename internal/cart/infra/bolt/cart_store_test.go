package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dwikikusuma/plantshop/internal/cart/app"
	"github.com/dwikikusuma/plantshop/internal/cart/domain"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/record"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestStore(t *testing.T) (*CartStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plantshop.db")
	store, err := Open(path, record.NewCodec("USD"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestCartStoreSaveLoad(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	want := domain.Cart{Items: []domain.LineItem{
		{ID: 5, Name: "Orchid", Price: domain.Money{Currency: "USD", Amount: 3499}, Image: "images/plant5.svg", Quantity: 1},
		{ID: 1, Name: "Monstera Deliciosa", Price: domain.Money{Currency: "USD", Amount: 2999}, Image: "images/plant1.svg", Quantity: 3},
	}}
	require.NoError(t, store.Save(ctx, "s1", want))
	// Saving twice changes nothing.
	require.NoError(t, store.Save(ctx, "s1", want))

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
}

func TestCartStoreMissingSession(t *testing.T) {
	store, _ := openTestStore(t)

	got, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCartStoreSessionsAreIsolated(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", domain.Cart{Items: []domain.LineItem{{ID: 2, Quantity: 1}}}))
	require.NoError(t, store.Save(ctx, "b", domain.Cart{Items: []domain.LineItem{{ID: 4, Quantity: 2}}}))
	require.NoError(t, store.Save(ctx, "a", domain.Cart{}))

	a, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.True(t, a.IsEmpty())

	b, err := store.Load(ctx, "b")
	require.NoError(t, err)
	require.Len(t, b.Items, 1)
	assert.Equal(t, 4, b.Items[0].ID)
}

func TestCartStoreSurvivesReopen(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", domain.Cart{Items: []domain.LineItem{{ID: 3, Name: "Echeveria", Price: domain.Money{Currency: "USD", Amount: 1499}, Quantity: 2}}}))
	require.NoError(t, store.Close())

	reopened, err := Open(path, record.NewCodec("USD"))
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	require.NoError(t, reopened.Ping(ctx))
}

func TestCartStoreCorruptRecord(t *testing.T) {
	store, _ := openTestStore(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.Bucket([]byte(sessionsBucket)).CreateBucketIfNotExists([]byte("s1"))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(record.Key), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "s1")
	require.ErrorIs(t, err, app.ErrCorruptCart)
}

func TestCartStoreCanceledContext(t *testing.T) {
	store, _ := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx, "s1")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Save(ctx, "s1", domain.Cart{}), context.Canceled)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ", record.NewCodec("USD"))
	require.Error(t, err)
}
