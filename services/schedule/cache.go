package schedule

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// ExpansionCache memoizes Expand results. Expansion is cheap per row, but the
// explore feed re-expands hundreds of rows per request; identical requests
// within the TTL reuse the projected occurrences. Keys include the reference
// now truncated to the minute, so output still changes as a same-day cutoff
// boundary passes.
type ExpansionCache struct {
	entries         map[string]*expansionEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

type expansionEntry struct {
	occurrences []Occurrence
	expiresAt   time.Time
	accessedAt  time.Time
}

// CacheConfig holds configuration for the expansion cache.
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid
	MaxEntries      int           // Maximum number of entries before cleanup
	CleanupInterval time.Duration // How often to run cleanup
}

// DefaultCacheConfig provides sensible defaults for expansion caching.
var DefaultCacheConfig = CacheConfig{
	TTL:             10 * time.Minute,
	MaxEntries:      2000,
	CleanupInterval: 5 * time.Minute,
}

// NewExpansionCache creates a new expansion cache with the given configuration.
func NewExpansionCache(config CacheConfig) *ExpansionCache {
	cache := &ExpansionCache{
		entries:         make(map[string]*expansionEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}

	go cache.cleanupLoop()

	return cache
}

func cacheKey(spec Spec, sourceID string, now time.Time, lookahead int) string {
	hasher := sha256.New()

	hasher.Write([]byte(sourceID))
	hasher.Write([]byte{byte(spec.Kind)})
	hasher.Write([]byte(spec.Date))
	hasher.Write([]byte(strconv.Itoa(spec.Weekday)))
	for _, wd := range spec.Weekdays {
		hasher.Write([]byte(strconv.Itoa(wd)))
	}
	hasher.Write([]byte(spec.Start.String()))
	hasher.Write([]byte(now.Truncate(time.Minute).Format(time.RFC3339)))
	hasher.Write([]byte(strconv.Itoa(lookahead)))

	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Expand returns the cached expansion for the given inputs, computing and
// storing it on a miss.
func (c *ExpansionCache) Expand(spec Spec, sourceID string, now time.Time, lookahead int) []Occurrence {
	key := cacheKey(spec, sourceID, now, lookahead)

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if exists && time.Now().Before(entry.expiresAt) {
		c.mutex.Lock()
		entry.accessedAt = time.Now()
		c.mutex.Unlock()
		return entry.occurrences
	}

	occurrences := Expand(spec, sourceID, now, lookahead)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = &expansionEntry{
		occurrences: occurrences,
		expiresAt:   time.Now().Add(c.ttl),
		accessedAt:  time.Now(),
	}
	if len(c.entries) > c.maxEntries {
		c.cleanup()
	}

	return occurrences
}

// cleanup removes expired entries and oldest entries if over limit. Callers
// must hold the write lock.
func (c *ExpansionCache) cleanup() {
	now := time.Now()

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	// If still over limit, remove least recently accessed entries.
	for len(c.entries) > c.maxEntries {
		var oldestKey string
		var oldestAccess time.Time
		for key, entry := range c.entries {
			if oldestKey == "" || entry.accessedAt.Before(oldestAccess) {
				oldestKey = key
				oldestAccess = entry.accessedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}

func (c *ExpansionCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and clears the cache.
func (c *ExpansionCache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*expansionEntry)
	c.mutex.Unlock()
}

// Len returns the current number of cached entries.
func (c *ExpansionCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}
