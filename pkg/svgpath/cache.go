package svgpath

import "sync"

// TransformCache memoizes parsed transform expressions by their exact
// source text. Entries are never evicted. It is safe for concurrent use;
// two goroutines racing on the same expression may both parse it, which
// is harmless.
type TransformCache struct {
	mu      sync.RWMutex
	entries map[string]Matrix
}

func NewTransformCache() *TransformCache {
	return &TransformCache{entries: map[string]Matrix{}}
}

func (c *TransformCache) Get(transform string) (Matrix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.entries[transform]
	return m, ok
}

func (c *TransformCache) Put(transform string, m Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[transform] = m
}

// Len returns the number of cached expressions.
func (c *TransformCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
