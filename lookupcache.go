// lookupcache.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file wraps a Dictionary with a bounded LRU memo of recent
// lookups, for callers (such as lookupserver.go) that re-query the
// same small set of hot keys far more often than they query the full
// key space. A LookupCache is safe for concurrent use: every exported
// method takes the same mutex around the underlying simplelru.LRU,
// which is not itself concurrency-safe.

package dawgdict

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// LookupCache memoizes Dictionary.Find results by key.
type LookupCache struct {
	mu   sync.Mutex
	dict *Dictionary
	lru  *lru.LRU
}

type lookupResult struct {
	value BaseType
	found bool
}

// NewLookupCache wraps dict with an LRU of at most size recent lookup
// results. A size of zero or less disables memoization entirely: Find
// passes straight through to dict on every call, without allocating an
// LRU at all.
func NewLookupCache(dict *Dictionary, size int) (*LookupCache, error) {
	if size <= 0 {
		return &LookupCache{dict: dict}, nil
	}
	inner, err := lru.NewLRU(size, nil)
	if err != nil {
		return nil, err
	}
	return &LookupCache{dict: dict, lru: inner}, nil
}

// Find returns the payload stored under key, consulting the cache
// before falling back to the underlying Dictionary. If the cache was
// constructed with size<=0 there is no LRU to consult, and Find always
// goes straight to dict.
func (c *LookupCache) Find(key []byte) (BaseType, bool) {
	if c.lru == nil {
		return c.dict.Find(key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	k := string(key)
	if cached, ok := c.lru.Get(k); ok {
		r := cached.(lookupResult)
		return r.value, r.found
	}

	value, found := c.dict.Find(key)
	c.lru.Add(k, lookupResult{value: value, found: found})
	return value, found
}

// Contains reports whether key is present, via Find.
func (c *LookupCache) Contains(key []byte) bool {
	_, found := c.Find(key)
	return found
}

// Purge discards every cached entry, without touching the underlying
// Dictionary. It is a no-op if the cache was constructed with size<=0.
func (c *LookupCache) Purge() {
	if c.lru == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}
