package table

import (
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"
)

const (
	defaultCacheTTL  = 2 * time.Second
	defaultCacheSize = 32
)

// Cache is an advisory parse-result cache keyed by a fast hash of the full
// buffer text plus the lookup line. Repeated commands against an unchanged
// buffer skip the re-parse. Entries expire after a short window and stale
// ones are pruned as a side effect of lookups. The cache is never
// authoritative: a miss falls back to a full parse, and hits hand out
// clones so callers can mutate freely.
type Cache struct {
	ttl        time.Duration
	maxEntries int
	entries    map[uint64]cacheEntry
	lastPrune  time.Time
}

type cacheEntry struct {
	table *Table
	added time.Time
}

// NewCache creates a cache with the given entry lifetime and capacity;
// zero or negative values pick the defaults.
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = defaultCacheSize
	}
	return &Cache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[uint64]cacheEntry),
		lastPrune:  time.Now(),
	}
}

// Locate behaves like the package-level Locate but consults the cache
// first. The returned table is owned by the caller.
func (c *Cache) Locate(text string, line int) *Table {
	now := time.Now()
	c.prune(now)

	key := cacheKey(text, line)
	if e, ok := c.entries[key]; ok && now.Sub(e.added) <= c.ttl {
		return e.table.Clone()
	}

	t := Locate(text, line)
	if t != nil {
		if len(c.entries) >= c.maxEntries {
			c.entries = make(map[uint64]cacheEntry)
		}
		c.entries[key] = cacheEntry{table: t.Clone(), added: now}
	}
	return t
}

// Len returns the number of live entries, for tests and debug output.
func (c *Cache) Len() int {
	return len(c.entries)
}

func (c *Cache) prune(now time.Time) {
	if now.Sub(c.lastPrune) < c.ttl {
		return
	}
	for k, e := range c.entries {
		if now.Sub(e.added) > c.ttl {
			delete(c.entries, k)
		}
	}
	c.lastPrune = now
}

func cacheKey(text string, line int) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(text)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(line))
	_, _ = d.Write(b[:])
	return d.Sum64()
}
