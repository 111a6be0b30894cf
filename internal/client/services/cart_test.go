package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

func newCart(t *testing.T, opts ...CartOption) (CartService, *storage.Store, *recordingNotifier) {
	t.Helper()
	store := newTestStore(t)
	n := &recordingNotifier{}
	return NewCartService(store, n, logging.Nop(), opts...), store, n
}

func TestCart_Init_WritesEmptyList(t *testing.T) {
	svc, store, _ := newCart(t)
	ctx := context.Background()

	require.NoError(t, svc.Init(ctx))

	raw, ok, err := store.GetString(ctx, storage.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestCart_Init_KeepsExistingItems(t *testing.T) {
	svc, _, _ := newCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Latte", 12)
	require.NoError(t, err)
	require.NoError(t, svc.Init(ctx))

	n, err := svc.ItemCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCart_AddLatteTwice(t *testing.T) {
	svc, _, notes := newCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Latte", 12)
	require.NoError(t, err)
	li, err := svc.AddItem(ctx, "Latte", 12)
	require.NoError(t, err)
	assert.Equal(t, int64(2), li.Quantity)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Latte", items[0].Name)
	assert.Equal(t, int64(12), items[0].Price)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.NotEmpty(t, items[0].ID)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(24), total)

	assert.Equal(t, []notification{
		{Level: LevelInfo, Msg: "Latte adăugat în coș!"},
		{Level: LevelInfo, Msg: "Latte adăugat în coș!"},
	}, notes.all())
}

func TestCart_DefaultIDsAreTimeOrderedUUIDs(t *testing.T) {
	svc, _, _ := newCart(t)
	ctx := context.Background()

	a, err := svc.AddItem(ctx, "Espresso", 8)
	require.NoError(t, err)
	b, err := svc.AddItem(ctx, "Croissant", 9)
	require.NoError(t, err)

	ua, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	ub, err := uuid.Parse(b.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), ua.Version())
	assert.Less(t, a.ID, b.ID)
	assert.NotEqual(t, ua, ub)
}

func TestCart_RemoveUnknownID_NoChange(t *testing.T) {
	n := 0
	svc, _, _ := newCart(t, WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Latte", 12)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "Mocha", 14)
	require.NoError(t, err)
	before, err := svc.Items(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "id-42"))

	after, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCart_RemoveByID(t *testing.T) {
	n := 0
	svc, _, _ := newCart(t, WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Latte", 12)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "Mocha", 14)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "id-1"))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Cart{{ID: "id-2", Name: "Mocha", Price: 14, Quantity: 1}}, items)
}

func TestCart_Clear(t *testing.T) {
	svc, _, _ := newCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "Latte", 12)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "Tiramisu", 18)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	count, err := svc.ItemCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCart_ItemsOnMissingKeyIsEmpty(t *testing.T) {
	svc, _, _ := newCart(t)

	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCart_CorruptedCartIsReported(t *testing.T) {
	svc, store, _ := newCart(t)
	ctx := context.Background()
	require.NoError(t, store.SetString(ctx, storage.KeyCart, "oops"))

	_, err := svc.AddItem(ctx, "Latte", 12)
	require.Error(t, err)
	_, err = svc.Total(ctx)
	require.Error(t, err)
}
