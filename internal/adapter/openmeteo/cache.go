package openmeteo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
	"github.com/couchcryptid/astronaut-etl/internal/observability"
)

// LocatedSource is a weather source bound to one location.
type LocatedSource interface {
	FetchWeather(ctx context.Context) (domain.WeatherObservation, error)
	Coordinates() (lat, lon float64)
}

// CachedSource wraps a LocatedSource with an in-memory LRU cache whose
// entries expire after a TTL.
type CachedSource struct {
	inner   LocatedSource
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedSource creates a cache decorator around a weather source. A nil
// clock uses the real clock.
func NewCachedSource(inner LocatedSource, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedSource {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedSource{
		inner:   inner,
		cache:   newLRUCache(maxEntries, ttl, clock),
		metrics: metrics,
	}
}

func (c *CachedSource) FetchWeather(ctx context.Context) (domain.WeatherObservation, error) {
	lat, lon := c.inner.Coordinates()
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if obs, ok := c.cache.get(key); ok {
		c.metrics.WeatherCache.WithLabelValues("hit").Inc()
		return obs, nil
	}
	c.metrics.WeatherCache.WithLabelValues("miss").Inc()

	obs, err := c.inner.FetchWeather(ctx)
	if err != nil {
		return obs, err
	}
	c.cache.put(key, obs)
	return obs, nil
}

// Coordinates reports the wrapped source's location.
func (c *CachedSource) Coordinates() (lat, lon float64) {
	return c.inner.Coordinates()
}

// lruCache is a thread-safe LRU cache of observations with per-entry expiry.
type lruCache struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key     string
	value   domain.WeatherObservation
	expires time.Time
	prev    *entry
	next    *entry
}

func newLRUCache(maxEntries int, ttl time.Duration, clock clockwork.Clock) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.WeatherObservation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.WeatherObservation{}, false
	}
	if !c.clock.Now().Before(e.expires) {
		delete(c.entries, key)
		c.remove(e)
		return domain.WeatherObservation{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.WeatherObservation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.clock.Now().Add(c.ttl)
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expires = expires
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expires: expires}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
