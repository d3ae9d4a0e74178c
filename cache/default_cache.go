package cache

import "sync"

import "github.com/u-235/mythodius/grid"

// The default grid cache. It's bounded by an approximate byte size and
// safe for concurrent use. When full, it samples a few entries and
// evicts the coldest ones, as long as they are colder than the new one.
//
// Grids are copied when passed to and retrieved from the cache, so
// callers can freely modify them afterwards.
type DefaultCache struct {
	mutex   sync.Mutex
	entries map[Key]*entry
	limit   int
	used    int
	peak    int
}

// Creates a new cache bounded by the given size in bytes. Negative
// sizes will panic.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("negative cache size") }
	return &DefaultCache{
		entries: make(map[Key]*entry, 128),
		limit: maxByteSize,
	}
}

// Stores a copy of the given grid. If the key is already cached, or no
// room can be made for the grid, the call has no effect.
func (self *DefaultCache) PassGrid(key Key, cells *grid.Grid) {
	const maxEvictions = 2

	now := clockNow()
	item := newEntry(cells.Clone(), now)
	if item.bytes > self.limit { return }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.entries[key]; found { return }

	hotness := item.hotness(now)
	for evictions := 0; self.used + item.bytes > self.limit; evictions++ {
		if evictions == maxEvictions || !self.evictColderThan(hotness, now) { return }
	}
	self.entries[key] = item
	self.used += item.bytes
	self.peak = max(self.peak, self.used)
}

// Evicts the coldest of a few sampled entries if it's colder than the
// given hotness. Map iteration order makes the sampling random. Must
// be called with the mutex held.
func (self *DefaultCache) evictColderThan(hotness int, now uint32) bool {
	const sampleSize = 10

	var coldestKey Key
	coldest, sampled := hotness, 0
	for key, item := range self.entries {
		if value := item.hotness(now); value < coldest {
			coldest, coldestKey = value, key
		}
		sampled += 1
		if sampled == sampleSize { break }
	}
	if coldest >= hotness { return false }

	self.used -= self.entries[coldestKey].bytes
	delete(self.entries, coldestKey)
	return true
}

// Returns a copy of the grid stored for the given key.
func (self *DefaultCache) GetGrid(key Key) (*grid.Grid, bool) {
	self.mutex.Lock()
	item, found := self.entries[key]
	self.mutex.Unlock()
	if !found { return nil, false }
	item.hits.Add(1)
	return item.cells.Clone(), true
}

// Returns the number of grids currently stored.
func (self *DefaultCache) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.entries)
}

// Removes all the entries. The peak size is kept.
func (self *DefaultCache) Clear() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	clear(self.entries)
	self.used = 0
}

// Returns an approximation of the bytes taken by the stored grids.
func (self *DefaultCache) ApproxByteSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.used
}

// Returns the highest [DefaultCache.ApproxByteSize]() the cache has
// reached. Useful to pick a size limit for a specific use-case.
func (self *DefaultCache) PeakSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.peak
}

// Returns a new handler for the cache. Handlers can't be used
// concurrently, but each importer can have its own handler over the
// same cache.
func (self *DefaultCache) NewHandler() *DefaultCacheHandler {
	return &DefaultCacheHandler{ cache: self }
}
