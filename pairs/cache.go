package pairs

import "sync"

// Cache memoizes pair tables by model count.
//
// A table depends on m alone, so one instance per m serves every caller.
// Cache is safe for concurrent use; the zero value is ready to use.
type Cache struct {
	mu     sync.RWMutex
	tables map[int]*Table
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[int]*Table)}
}

// Get returns the table for m, generating and storing it on first use.
// Errors from Generate are returned as-is and nothing is stored.
func (c *Cache) Get(m int) (*Table, error) {
	c.mu.RLock()
	tbl, ok := c.tables[m]
	c.mu.RUnlock()
	if ok {
		return tbl, nil
	}

	tbl, err := Generate(m)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tables == nil {
		c.tables = make(map[int]*Table)
	}
	// Another goroutine may have won the race; keep the first table.
	if prev, ok := c.tables[m]; ok {
		return prev, nil
	}
	c.tables[m] = tbl

	return tbl, nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}
