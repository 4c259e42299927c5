package dataset

import "sync"

// Cache memoizes loaded tables by source path so repeated dashboard passes reuse
// the same in-memory table. Entries only leave the cache on explicit Invalidate.
type Cache struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewCache returns an empty table cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[string]*Table)}
}

// Get returns the cached table for path, loading it on first use.
func (c *Cache) Get(path string) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[path]; ok {
		return t, nil
	}
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.tables[path] = t
	return t, nil
}

// Invalidate drops the cached table for path; the next Get re-reads the file.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, path)
}
