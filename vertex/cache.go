// vertex/cache.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package vertex

import lru "github.com/hashicorp/golang-lru/v2"

// Cache memoizes Decoders by vertex Type. Draw submissions reuse a small
// set of vertex types, so a modest LRU captures essentially all of them.
type Cache struct {
	lru *lru.Cache[Type, *Decoder]
}

func NewCache(size int) *Cache {
	c, err := lru.New[Type, *Decoder](size)
	if err != nil {
		panic(err) // only fails for size <= 0
	}
	return &Cache{lru: c}
}

// Get returns the cached Decoder for vt, constructing and caching it on a
// miss.
func (c *Cache) Get(vt Type) (*Decoder, error) {
	if d, ok := c.lru.Get(vt); ok {
		return d, nil
	}
	d, err := NewDecoder(vt)
	if err != nil {
		return nil, err
	}
	c.lru.Add(vt, d)
	return d, nil
}
