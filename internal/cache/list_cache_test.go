package cache

import (
	"context"
	"testing"
	"time"

	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *ListCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewListCache(rdb, time.Minute)
}

func TestListRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	lists, err := c.GetLists(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, lists, "cold cache is a miss")

	stored := []dom.ShoppingList{{ID: 7, OwnerID: 1, Title: "Feira"}}
	require.NoError(t, c.SetLists(ctx, 1, stored))
	lists, err = c.GetLists(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Feira", lists[0].Title)

	require.NoError(t, c.InvalidateLists(ctx, 1))
	lists, err = c.GetLists(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, lists)
}

func TestEmptyCollectionIsAHit(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetLists(ctx, 1, nil))
	lists, err := c.GetLists(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, lists, "a stored empty collection must not read back as a miss")
	assert.Empty(t, lists)

	require.NoError(t, c.SetPantry(ctx, 1, []dom.PantryItem{}))
	items, err := c.GetPantry(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestInvalidateListsMultipleUsers(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetLists(ctx, 1, []dom.ShoppingList{{ID: 1}}))
	require.NoError(t, c.SetLists(ctx, 2, []dom.ShoppingList{{ID: 2}}))
	require.NoError(t, c.InvalidateLists(ctx, 1, 2))

	for _, id := range []int64{1, 2} {
		lists, err := c.GetLists(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, lists)
	}
}
