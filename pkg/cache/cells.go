package cache

import (
	"context"
	"sync"

	"github.com/matzehuels/gridwork/pkg/grid"
)

// CellStats counts lookups against a [CellCache].
type CellStats struct {
	Hits      int `json:"hits"`
	Misses    int `json:"misses"`
	Entries   int `json:"entries"`
	Destroyed int `json:"destroyed"`
}

// CellCache holds the rendered cells of one column.
type CellCache struct {
	store  Cache
	column string

	mu    sync.Mutex
	keys  map[string]struct{}
	stats CellStats
}

// NewCellCache creates a cell cache for the column with the given id,
// backed by store. A nil store disables caching.
func NewCellCache(column string, store Cache) *CellCache {
	if store == nil {
		store = NewNullCache()
	}
	return &CellCache{store: store, column: column, keys: make(map[string]struct{})}
}

// Key identifies a rendered cell by position and width.
func (c *CellCache) Key(row, col int, width float64) string {
	return cellKey(c.column, row, col, width)
}

// Lookup returns the rendered cell at (row, col) for width, if cached.
func (c *CellCache) Lookup(row, col int, width float64) (string, bool) {
	data, hit, err := c.store.Get(context.Background(), c.Key(row, col, width))

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil || !hit {
		c.stats.Misses++
		return "", false
	}
	c.stats.Hits++
	return string(data), true
}

// Store caches a rendered cell.
func (c *CellCache) Store(row, col int, width float64, rendered string) {
	key := c.Key(row, col, width)
	if err := c.store.Set(context.Background(), key, []byte(rendered), 0); err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys[key] = struct{}{}
}

// DestroyResources drops every cell this cache stored.
func (c *CellCache) DestroyResources() {
	c.mu.Lock()
	keys := c.keys
	c.keys = make(map[string]struct{})
	c.stats.Destroyed++
	c.mu.Unlock()

	ctx := context.Background()
	for k := range keys {
		_ = c.store.Delete(ctx, k)
	}
}

// Stats returns the lookup counters.
func (c *CellCache) Stats() CellStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = len(c.keys)
	return s
}

var _ grid.Resources = (*CellCache)(nil)
