package cache

import (
	"context"
	"time"
)

// GetOrFetch returns the fresh payload under key or calls fetch to load it.
//
// A successful fetch is stored with the current clock reading. A failed fetch
// stores nothing; its value (the resource's empty default) is passed through
// together with the error. Concurrent misses on one key share a single fetch,
// which is detached from any one caller's cancellation: a caller whose ctx
// ends stops waiting and gets the zero value, the others still get the result.
func GetOrFetch[T any](ctx context.Context, c *Cache, key Key, fetch FetchFunc[T]) (T, error) {
	if v, ok := lookup[T](c, key); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)

	// Bounded by the transport timeout, not by the first caller.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String(), func() (interface{}, error) {
		// Another flight may have filled the key while this one queued.
		if v, ok := lookup[T](c, key); ok {
			return v, nil
		}

		c.fetches.Add(1)
		v, fetchErr := fetch(fetchCtx)
		if fetchErr != nil {
			c.failed.Add(1)
			return v, fetchErr
		}

		c.store(key, v)
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		c.l.Warnf(ctx, "cache: stopped waiting for %s: %v", key, ctx.Err())
		return zero, ctx.Err()
	case res := <-ch:
		v, _ := res.Val.(T)
		if res.Err != nil {
			c.l.Warnf(ctx, "cache: fetch %s failed, serving empty default: %v", key, res.Err)
		}
		return v, res.Err
	}
}

func lookup[T any](c *Cache, key Key) (T, bool) {
	var zero T

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.fresh(key, e) {
		return zero, false
	}

	v, ok := e.payload.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func (c *Cache) store(key Key, payload any) {
	e := &entry{payload: payload, fetchedAt: c.now()}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// fresh implements: valid iff now - fetchedAt <= ttl(resource).
func (c *Cache) fresh(key Key, e *entry) bool {
	return c.now().Sub(e.fetchedAt) <= c.TTL(key)
}

// TTL returns the expiration policy applied to key.
func (c *Cache) TTL(key Key) time.Duration {
	if ttl, ok := c.ttls[key.Resource]; ok {
		return ttl
	}
	return fallbackTTL
}

// Invalidate drops key so the next read fetches again.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Purge drops every entry and returns how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[Key]*entry)
	c.mu.Unlock()
	return n
}

// Sweep removes expired entries and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if !c.fresh(key, e) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every SweepInterval until ctx is done.
func (c *Cache) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(c.sweep)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := c.Sweep(); n > 0 {
					c.l.Debugf(ctx, "cache: swept %d expired entries", n)
				}
			}
		}
	}()
}

// Stats reports entry count and counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	n := len(c.entries)
	c.mu.RUnlock()

	return Stats{
		Entries: n,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Fetches: c.fetches.Load(),
		Failed:  c.failed.Load(),
	}
}
