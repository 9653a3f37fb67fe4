package useragent

import (
	"container/list"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

type cacheKey struct {
	hash   uint64
	strict bool
}

type cacheEntry struct {
	key    cacheKey
	result Result
}

// CachedParser memoizes the results of a Parser in a fixed-size LRU cache.
// Entries are keyed by the xxhash of the trimmed user agent; a hit whose
// stored string differs is treated as a miss, so hash collisions never leak
// another client's classification.
type CachedParser struct {
	parser   *Parser
	capacity int

	mu       sync.Mutex
	items    map[cacheKey]*list.Element
	eviction *list.List
	hits     uint64
	misses   uint64
}

// NewCachedParser wraps p with a cache holding up to capacity results.
// The capacity must be positive, otherwise it panics.
func NewCachedParser(p *Parser, capacity int) *CachedParser {
	if capacity <= 0 {
		panic("user agent cache capacity must be positive")
	}
	if p == nil {
		p = defaultParser
	}
	return &CachedParser{
		parser:   p,
		capacity: capacity,
		items:    make(map[cacheKey]*list.Element, capacity),
		eviction: list.New(),
	}
}

// Parse classifies ua using the wrapped parser's strictness.
func (c *CachedParser) Parse(ua string) Result {
	return c.Classify(ua, c.parser.strict)
}

// Classify returns the cached result for ua, classifying it on a miss.
func (c *CachedParser) Classify(ua string, strict bool) Result {
	key := cacheKey{hash: xxhash.Sum64String(ua), strict: strict}

	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*cacheEntry)
		if entry.result.String == strings.TrimSpace(ua) {
			c.eviction.MoveToFront(elem)
			c.hits++
			c.mu.Unlock()
			return entry.result
		}
	}
	c.misses++
	c.mu.Unlock()

	// Classification runs outside the lock; concurrent misses for the same
	// string compute identical results.
	res := c.parser.Classify(ua, strict)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).result = res
		return res
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, result: res})
	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}

	return res
}

// Len returns the number of cached results.
func (c *CachedParser) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Stats returns the number of cache hits and misses so far.
func (c *CachedParser) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Purge drops every cached result.
func (c *CachedParser) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[cacheKey]*list.Element, c.capacity)
	c.eviction.Init()
}
