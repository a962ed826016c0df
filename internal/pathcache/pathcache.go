// Package pathcache memoizes fully resolved paths across solve calls.
//
// For every (start, end) pair a previous search resolved, the cache stores
// the next hop toward end and the exact cost of that edge. One successful
// search of length k seeds up to k entries, so a later query starting at any
// intermediate waypoint toward the same destination replays straight from
// the cache without touching the graph. Proven-unreachable pairs are stored
// as negative entries with infinite cost.
//
// Storage is a fixed-capacity open-addressing table with linear probing.
// Entries are never individually deleted; load is capped at 75% by refusing
// further inserts, and the table is only ever cleared wholesale.
package pathcache

import (
	"encoding/binary"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/gridmind/pathgo/model"
)

// Outcome classifies a cache lookup.
type Outcome int

const (
	// Miss means the pair has never been resolved; run a full search.
	Miss Outcome = iota
	// Hit means a path was replayed from cached next-hop entries.
	Hit
	// HitNoPath means the pair is known to be unreachable.
	HitNoPath
)

type item struct {
	start model.State
	end   model.State
	next  model.State
	cost  float32
	used  bool
}

// Cache is a fixed-capacity (start,end) → next-hop table.
type Cache struct {
	items  []item
	n      int
	hits   int
	misses int
}

// New creates a cache with room for maxItems entries. Inserts are refused
// once the table passes three quarters full, bounding probe-chain length.
func New(maxItems int) *Cache {
	return &Cache{
		items: make([]item, maxItems),
	}
}

// Reset clears the table and the hit/miss counters wholesale.
func (c *Cache) Reset() {
	if c.n == 0 && c.hits == 0 && c.misses == 0 {
		return
	}
	clear(c.items)
	c.n = 0
	c.hits = 0
	c.misses = 0
}

func hashPair(start, end model.State) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], uint64(start))
	binary.LittleEndian.PutUint64(b[8:], uint64(end))
	return xxhash.Sum64(b[:])
}

// Add seeds next-hop entries for a resolved path. path holds the full
// start→end sequence and costs the exact cost of each consecutive edge, so
// len(costs) == len(path)-1. The batch is all-or-nothing: if it would push
// the table past its load cap, none of it is inserted.
func (c *Cache) Add(path []model.State, costs []float32) {
	if len(path) < 2 || len(costs) != len(path)-1 {
		panic("pathcache: malformed path batch")
	}
	if c.n+len(path) > len(c.items)*3/4 {
		return
	}

	end := path[len(path)-1]
	for i := 0; i < len(path)-1; i++ {
		c.addItem(item{start: path[i], end: end, next: path[i+1], cost: costs[i], used: true})
	}
}

// AddNoSolution records that end is unreachable from each of starts.
func (c *Cache) AddNoSolution(end model.State, starts []model.State) {
	if c.n+len(starts) > len(c.items)*3/4 {
		return
	}

	for _, start := range starts {
		c.addItem(item{start: start, end: end, cost: model.InfiniteCost, used: true})
	}
}

func (c *Cache) addItem(it item) {
	index := hashPair(it.start, it.end) % uint64(len(c.items))
	for {
		slot := &c.items[index]
		if !slot.used {
			*slot = it
			c.n++
			return
		}
		if slot.start == it.start && slot.end == it.end {
			// Already cached. A real and a negative entry for the same pair
			// cannot coexist within one reset epoch.
			if (slot.cost == model.InfiniteCost) != (it.cost == model.InfiniteCost) {
				panic("pathcache: conflicting entry for cached pair")
			}
			return
		}
		index++
		if index == uint64(len(c.items)) {
			index = 0
		}
	}
}

func (c *Cache) find(start, end model.State) *item {
	index := hashPair(start, end) % uint64(len(c.items))
	for {
		slot := &c.items[index]
		if !slot.used {
			return nil
		}
		if slot.start == start && slot.end == end {
			return slot
		}
		index++
		if index == uint64(len(c.items)) {
			index = 0
		}
	}
}

// Solve resolves (start, end) from the cache. On a Hit it returns the full
// start→end path and its accumulated cost, replayed hop by hop; Add
// guarantees every intermediate hop is itself present, so a broken chain is
// a contract violation. On a HitNoPath the pair is known unreachable. On a
// Miss the caller must run a full search.
func (c *Cache) Solve(start, end model.State) ([]model.State, float32, Outcome) {
	it := c.find(start, end)
	if it == nil {
		c.misses++
		return nil, 0, Miss
	}
	c.hits++

	if it.cost == model.InfiniteCost {
		return nil, 0, HitNoPath
	}

	path := []model.State{start}
	totalCost := float32(0)
	for start != end {
		if it == nil {
			panic("pathcache: broken next-hop chain")
		}
		totalCost += it.cost
		path = append(path, it.next)
		start = it.next
		if start != end {
			it = c.find(start, end)
		}
	}
	return path, totalCost, Hit
}

// Hits returns the number of lookups answered from the cache.
func (c *Cache) Hits() int { return c.hits }

// Misses returns the number of lookups that required a full search.
func (c *Cache) Misses() int { return c.misses }

// AllocatedBytes returns the table's total backing size.
func (c *Cache) AllocatedBytes() int {
	return len(c.items) * int(unsafe.Sizeof(item{}))
}

// UsedBytes returns the backing size occupied by live entries.
func (c *Cache) UsedBytes() int {
	return c.n * int(unsafe.Sizeof(item{}))
}
