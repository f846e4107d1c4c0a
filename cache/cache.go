// Package cache provides memoization of per-constraint pattern
// enumeration. Levels often repeat the same line shape (operator and
// value sequence with the same target) across rows or columns; their
// satisfying local patterns are identical, so one enumeration can serve
// all of them.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/pflow-xyz/go-crosscells/puzzle"
)

// PatternCache caches satisfying local patterns keyed by constraint
// shape.
type PatternCache struct {
	mu        sync.Mutex
	cache     map[string][]uint64
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewPatternCache creates a cache with the specified maximum size.
// When the cache is full, an arbitrary entry is evicted. Set maxSize
// to 0 for an unlimited cache.
func NewPatternCache(maxSize int) *PatternCache {
	return &PatternCache{
		cache:   make(map[string][]uint64),
		maxSize: maxSize,
	}
}

// hashConstraint creates a deterministic hash of a constraint's shape:
// kind, target and the ordered operator/value sequence of its cells.
// Global cell positions are excluded on purpose, so identical lines in
// different grid locations share one entry.
func hashConstraint(c *puzzle.Constraint) string {
	h := sha256.New()
	buf := make([]byte, 8)

	binary.BigEndian.PutUint64(buf, uint64(c.Kind))
	h.Write(buf)
	binary.BigEndian.PutUint64(buf, uint64(c.Target))
	h.Write(buf)
	for _, cell := range c.Cells {
		binary.BigEndian.PutUint64(buf, uint64(cell.Op))
		h.Write(buf)
		binary.BigEndian.PutUint64(buf, uint64(cell.Value))
		h.Write(buf)
	}

	return string(h.Sum(nil))
}

// Get retrieves the cached patterns for a constraint's shape.
// Returns (patterns, true) if found, (nil, false) if not.
func (c *PatternCache) Get(cons *puzzle.Constraint) ([]uint64, bool) {
	key := hashConstraint(cons)

	c.mu.Lock()
	defer c.mu.Unlock()

	if patterns, ok := c.cache[key]; ok {
		c.hits++
		return patterns, true
	}
	c.misses++
	return nil, false
}

// Put stores a constraint shape's patterns.
func (c *PatternCache) Put(cons *puzzle.Constraint, patterns []uint64) {
	key := hashConstraint(cons)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}

	c.cache[key] = patterns
}

// Patterns returns the constraint's satisfying local patterns,
// enumerating and caching them on first sight of the shape.
func (c *PatternCache) Patterns(cons *puzzle.Constraint) []uint64 {
	if patterns, ok := c.Get(cons); ok {
		return patterns
	}

	patterns := cons.SatisfyingPatterns()
	c.Put(cons, patterns)
	return patterns
}

// Clear removes all entries from the cache.
func (c *PatternCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string][]uint64)
}

// Size returns the current number of cached shapes.
func (c *PatternCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Stats holds cache statistics.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *PatternCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
