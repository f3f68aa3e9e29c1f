package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// nameCache is an in-memory LRU mapping usernames to player IDs. The mapping
// is immutable for the life of an account, so entries only ever go stale when
// an account is deleted; Remove handles that path.
type nameCache struct {
	lru *expirable.LRU[string, string]
}

func newNameCache(size int, ttl time.Duration) *nameCache {
	return &nameCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *nameCache) Get(username string) (string, bool) {
	return c.lru.Get(username)
}

func (c *nameCache) Set(username, playerID string) {
	c.lru.Add(username, playerID)
}

func (c *nameCache) Remove(username string) {
	c.lru.Remove(username)
}
