package cas

import (
	"container/list"
)

// LRUCache is a CAS wrapper that keeps recently retrieved entries in front of
// the underlying store, evicting the least recently used.
type LRUCache struct {
	underlying CAS
	cache      map[Hash]*list.Element
	evictList  *list.List
	maxSize    int
	hits       int
	misses     int
}

type cacheEntry struct {
	hash  Hash
	value []byte
}

const DefaultCacheSize = 1024

// NewLRUCache wraps underlying with a cache of at most maxSize entries.
// A non-positive maxSize selects DefaultCacheSize.
func NewLRUCache(underlying CAS, maxSize int) *LRUCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &LRUCache{
		underlying: underlying,
		cache:      make(map[Hash]*list.Element),
		evictList:  list.New(),
		maxSize:    maxSize,
	}
}

func (l *LRUCache) Put(item Hashable) (Hash, error) {
	return l.underlying.Put(item)
}

func (l *LRUCache) Has(hash Hash) bool {
	return l.underlying.Has(hash)
}

// getValue implements directStore interface - this is where caching happens
func (l *LRUCache) getValue(h Hash) (bool, []byte, error) {
	if elem, ok := l.cache[h]; ok {
		l.hits++
		l.evictList.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		return true, entry.value, nil
	}

	l.misses++
	underlying, ok := l.underlying.(directStore)
	if !ok {
		// Underlying CAS doesn't support direct retrieval
		return false, nil, nil
	}

	has, data, err := underlying.getValue(h)
	if err != nil {
		return false, nil, err
	}
	if !has {
		return false, nil, nil
	}

	l.addToCache(h, data)
	return true, data, nil
}

// addToCache adds an entry to the cache and evicts oldest if necessary
func (l *LRUCache) addToCache(hash Hash, value []byte) {
	// If already in cache, update and move to front
	if elem, ok := l.cache[hash]; ok {
		l.evictList.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	elem := l.evictList.PushFront(&cacheEntry{hash: hash, value: value})
	l.cache[hash] = elem
	for l.evictList.Len() > l.maxSize {
		l.evictOldest()
	}
}

// evictOldest removes the least recently used entry from cache
func (l *LRUCache) evictOldest() {
	elem := l.evictList.Back()
	if elem != nil {
		l.evictList.Remove(elem)
		entry := elem.Value.(*cacheEntry)
		delete(l.cache, entry.hash)
	}
}

type CacheStats struct {
	Size    int
	MaxSize int
	Hits    int
	Misses  int
}

// Stats returns current cache statistics
func (l *LRUCache) Stats() CacheStats {
	return CacheStats{
		Size:    len(l.cache),
		MaxSize: l.maxSize,
		Hits:    l.hits,
		Misses:  l.misses,
	}
}

// RecordDepth delegates to underlying CAS
func (l *LRUCache) RecordDepth(hash Hash, depth int) {
	l.underlying.RecordDepth(hash, depth)
}

// Depths delegates to underlying CAS
func (l *LRUCache) Depths(hash Hash) []int {
	return l.underlying.Depths(hash)
}
