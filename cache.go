package ledgerfmt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache memoizes Format results by content hash. It belongs to the host
// (an editor session, a server): the engine functions never use one
// implicitly. A Cache is safe for concurrent use.
type Cache struct {
	items *cache.Cache
}

type formatted struct {
	text    string
	changed bool
}

// NewCache returns a Cache whose entries expire after ttl, or never if ttl
// is not positive.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{items: cache.New(cache.NoExpiration, 0)}
	}
	return &Cache{items: cache.New(ttl, 2*ttl)}
}

// contentKey identifies a text independently of the options.
func contentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func formatKey(text string, opts Options) string {
	column := opts.Column
	if column <= 0 {
		column = DefaultColumn
	}
	return fmt.Sprintf("%s/sort=%t/column=%d", contentKey(text), opts.Sort, column)
}

// Format is like the package Format function, but returns the memoized
// result when the same text was already formatted with the same options.
// Failures are not memoized.
func (c *Cache) Format(text string, opts Options) (string, bool, error) {
	key := formatKey(text, opts)
	if v, ok := c.items.Get(key); ok {
		r := v.(formatted)
		return r.text, r.changed, nil
	}
	out, changed, err := Format(text, opts)
	if err != nil {
		return "", false, err
	}
	c.items.Set(key, formatted{out, changed}, cache.DefaultExpiration)
	return out, changed, nil
}

// Invalidate drops every memoized result for text.
func (c *Cache) Invalidate(text string) {
	prefix := contentKey(text) + "/"
	for key := range c.items.Items() {
		if strings.HasPrefix(key, prefix) {
			c.items.Delete(key)
		}
	}
}

// Flush drops every memoized result.
func (c *Cache) Flush() { c.items.Flush() }

// Len returns the number of memoized results, including expired ones not yet
// cleaned up.
func (c *Cache) Len() int { return c.items.ItemCount() }
