package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyLists  = "lists:user:"
	keyPantry = "pantry:user:"
)

// ListCache caches per-user list and pantry snapshots in Redis. Everything is
// invalidated on write; reads tolerate a cold or unavailable cache.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListCache returns a new ListCache.
func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{rdb: rdb, ttl: ttl}
}

// GetLists returns the cached list collection for a user, or nil on miss.
func (c *ListCache) GetLists(ctx context.Context, userID int64) ([]dom.ShoppingList, error) {
	b, err := c.rdb.Get(ctx, keyLists+strconv.FormatInt(userID, 10)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lists []dom.ShoppingList
	if err := json.Unmarshal(b, &lists); err != nil {
		return nil, err
	}
	// An empty collection round-trips as JSON null. Keep it non-nil so
	// callers can tell a hit from a miss.
	if lists == nil {
		lists = []dom.ShoppingList{}
	}
	return lists, nil
}

// SetLists stores the list collection for a user.
func (c *ListCache) SetLists(ctx context.Context, userID int64, lists []dom.ShoppingList) error {
	b, err := json.Marshal(lists)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyLists+strconv.FormatInt(userID, 10), b, c.ttl).Err()
}

// GetPantry returns the cached pantry for a user, or nil on miss.
func (c *ListCache) GetPantry(ctx context.Context, userID int64) ([]dom.PantryItem, error) {
	b, err := c.rdb.Get(ctx, keyPantry+strconv.FormatInt(userID, 10)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []dom.PantryItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []dom.PantryItem{}
	}
	return items, nil
}

// SetPantry stores the pantry snapshot for a user.
func (c *ListCache) SetPantry(ctx context.Context, userID int64, items []dom.PantryItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPantry+strconv.FormatInt(userID, 10), b, c.ttl).Err()
}

// InvalidateLists drops the cached list collections for all given users.
// A list write affects the owner and every collaborator, so callers pass the
// whole audience.
func (c *ListCache) InvalidateLists(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, keyLists+strconv.FormatInt(id, 10))
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// InvalidatePantry drops the cached pantry for a user.
func (c *ListCache) InvalidatePantry(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, keyPantry+strconv.FormatInt(userID, 10)).Err()
}
