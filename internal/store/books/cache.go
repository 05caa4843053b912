package books

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bookly-app/bookly-api/internal/schemas"
	"github.com/redis/go-redis/v9"
)

// versionKey is a global counter; bumping it after a committed write
// invalidates every cached list at once.
const versionKey = "books:ver"

// Cache is a fail-open read-through cache for the book list. Every operation
// runs under a short timeout; on Redis trouble it warns once and the caller
// falls back to the database.
type Cache struct {
	rdb     *redis.Client
	enabled bool
	warned  atomic.Bool
	ttl     time.Duration
	shortTO time.Duration
}

// NewCache builds the list cache. A nil client or BOOKS_DISABLE_CACHE=1
// disables it; all methods then no-op.
func NewCache(rdb *redis.Client) *Cache {
	if rdb == nil || os.Getenv("BOOKS_DISABLE_CACHE") == "1" {
		return &Cache{}
	}

	ttl := 2 * time.Hour
	if v := os.Getenv("BOOKS_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	shortTO := 150 * time.Millisecond
	if v := os.Getenv("BOOKS_CACHE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			shortTO = time.Duration(ms) * time.Millisecond
		}
	}

	return &Cache{rdb: rdb, enabled: true, ttl: ttl, shortTO: shortTO}
}

// listKey resolves the version-prefixed key, defaulting to v1 when the
// counter is unset or unreadable.
func (c *Cache) listKey(ctx context.Context) string {
	ver := int64(1)
	v, err := c.rdb.Get(ctx, versionKey).Int64()
	if err == nil {
		ver = v
	} else if err != redis.Nil {
		c.warnOnce("version read failed: %v; using v1", err)
	}
	return fmt.Sprintf("books:v%d:list", ver)
}

// GetList returns the cached list and true on a hit.
func (c *Cache) GetList(ctx context.Context) ([]schemas.Book, bool) {
	if !c.enabled {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	raw, err := c.rdb.Get(ctx, c.listKey(ctx)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.warnOnce("get failed: %v; bypassing cache", err)
		return nil, false
	}

	var out []schemas.Book
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// SetList stores the list under the current version, best effort.
func (c *Cache) SetList(ctx context.Context, list []schemas.Book) {
	if !c.enabled {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.rdb.SetEx(ctx, c.listKey(ctx), raw, c.ttl).Err(); err != nil {
		c.warnOnce("set failed: %v (muted next)", err)
	}
}

// Bump invalidates cached lists. Call after a successful commit of any write.
func (c *Cache) Bump(ctx context.Context) {
	if !c.enabled {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		c.warnOnce("bump failed: %v", err)
	}
}

func (c *Cache) warnOnce(format string, args ...any) {
	if c.warned.CompareAndSwap(false, true) {
		log.Printf("[books][cache] "+format, args...)
	}
}
