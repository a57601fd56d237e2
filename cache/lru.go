// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// LRU is a golang-lru cache with hit/miss accounting.
type LRU struct {
	cache *lru.Cache
	stats Stats
}

// NewLRU create a LRU cache instance.
// maxSize should be > 0, or an error returned.
func NewLRU(maxSize int) (*LRU, error) {
	cache, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &LRU{cache: cache}, nil
}

// Loader loads the value of a missed key.
type Loader func(key any) (any, error)

// Get returns the cached value of key.
func (l *LRU) Get(key any) (any, bool) {
	v, ok := l.cache.Get(key)
	if ok {
		l.stats.Hit()
	} else {
		l.stats.Miss()
	}
	return v, ok
}

// Add adds a value to the cache.
func (l *LRU) Add(key, value any) {
	l.cache.Add(key, value)
}

// Len returns the number of cached items.
func (l *LRU) Len() int {
	return l.cache.Len()
}

// GetOrLoad first try to get from cache, do load if missed.
// Failed loads are not cached.
func (l *LRU) GetOrLoad(key any, loader Loader) (any, error) {
	if v, ok := l.Get(key); ok {
		return v, nil
	}
	v, err := loader(key)
	if err != nil {
		return nil, err
	}
	l.cache.Add(key, v)
	return v, nil
}

// Stats returns hit/miss counters, see Stats.Stats.
func (l *LRU) Stats() (bool, int64, int64) {
	return l.stats.Stats()
}
