package arena

import (
	"encoding/binary"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/gridmind/pathgo/model"
)

const minBuckets = 64

// Stats tracks arena memory usage metrics.
type Stats struct {
	BlocksAllocated uint64 // current block count
	BytesReserved   uint64 // node memory reserved across all blocks
	BytesUsed       uint64 // node memory handed out since the last clear
	NodesAllocated  uint64 // nodes handed out since the last clear
	CacheBytes      uint64 // adjacency cache capacity in bytes
	CacheUsedBytes  uint64 // adjacency cache bytes in use
	HashCollisions  uint64 // cumulative bucket-tree insertions
}

// Arena owns all Node memory. Nodes are allocated from fixed-size blocks
// and handed out through a free list; blocks chain as the graph outgrows
// them and are released, all but the first, on Clear.
type Arena struct {
	blockSize int

	blocks  [][]Node
	freeMem Node // free-list sentinel

	buckets    []*Node
	bucketMask uint64

	cache    []NodeCost
	cacheCap int

	allocated  int // nodes handed out since the last Clear
	available  int // nodes currently on the free list
	collisions uint64
}

// New creates an arena that allocates blockSize nodes at a time and can
// cache blockSize*typicalAdjacency neighbor entries. Both arguments must be
// positive; the caller validates.
func New(blockSize, typicalAdjacency int) *Arena {
	cacheCap := blockSize * typicalAdjacency

	nBuckets := minBuckets
	for nBuckets < blockSize {
		nBuckets <<= 1
	}

	a := &Arena{
		blockSize:  blockSize,
		buckets:    make([]*Node, nBuckets),
		bucketMask: uint64(nBuckets - 1),
		cache:      make([]NodeCost, 0, cacheCap),
		cacheCap:   cacheCap,
	}
	a.freeMem.InitSentinel()
	a.blocks = append(a.blocks, a.newBlock())

	return a
}

func hashState(s model.State) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(s))
	return xxhash.Sum64(b[:])
}

// newBlock allocates a block and threads its nodes onto the free list.
// The block is a plain slice whose backing array is never appended to, so
// node addresses stay stable for the arena's lifetime.
func (a *Arena) newBlock() []Node {
	block := make([]Node, a.blockSize)
	for i := range block {
		a.freeMem.AddBefore(&block[i])
	}
	a.available += a.blockSize
	return block
}

func (a *Arena) alloc() *Node {
	if a.freeMem.next == &a.freeMem {
		if a.available != 0 {
			panic("arena: free list empty with nodes available")
		}
		a.blocks = append(a.blocks, a.newBlock())
	}
	n := a.freeMem.next
	n.Unlink()
	a.allocated++
	a.available--
	return n
}

// insert places a freshly allocated node into its bucket's identity-ordered
// collision tree.
func (a *Arena) insert(key uint64, n *Node) {
	p := a.buckets[key]
	if p == nil {
		a.buckets[key] = n
		return
	}
	a.collisions++
	for {
		dir := 0
		if n.State >= p.State {
			dir = 1
		}
		if p.child[dir] == nil {
			p.child[dir] = n
			return
		}
		p = p.child[dir]
	}
}

func (a *Arena) find(state model.State) *Node {
	n := a.buckets[hashState(state)&a.bucketMask]
	for n != nil && n.State != state {
		if state < n.State {
			n = n.child[0]
		} else {
			n = n.child[1]
		}
	}
	return n
}

// GetNode returns the node for state in the given frame. An existing node
// already stamped with frame is returned unchanged and the remaining
// arguments are ignored; an existing node from an earlier frame is
// reinitialized in place; an unknown state gets a fresh node off the free
// list, growing the arena by one block if it is exhausted.
func (a *Arena) GetNode(frame uint32, state model.State, costFromStart, estToGoal float32, parent *Node) *Node {
	if n := a.find(state); n != nil {
		if n.Frame != frame {
			n.Init(frame, state, costFromStart, estToGoal, parent)
		}
		return n
	}

	n := a.alloc()
	n.Clear()
	n.Init(frame, state, costFromStart, estToGoal, parent)
	a.insert(hashState(state)&a.bucketMask, n)
	return n
}

// FetchNode returns the node for a state already known to the arena. Asking
// for an unknown state is a contract violation.
func (a *Arena) FetchNode(state model.State) *Node {
	n := a.find(state)
	if n == nil {
		panic("arena: fetch of unknown state")
	}
	return n
}

// PushCache appends a neighbor list to the adjacency cache and returns its
// offset. When the cache is out of capacity it reports ok=false and the
// caller falls back to recomputing the list from the graph every time.
func (a *Arena) PushCache(nodes []NodeCost) (start int, ok bool) {
	if len(a.cache)+len(nodes) > a.cacheCap {
		return -1, false
	}
	start = len(a.cache)
	a.cache = append(a.cache, nodes...)
	return start, true
}

// ReadCache copies n cached neighbor entries beginning at start into buf and
// returns the filled slice.
func (a *Arena) ReadCache(start, n int, buf []NodeCost) []NodeCost {
	if start < 0 || n <= 0 || start+n > len(a.cache) {
		panic("arena: cache read out of range")
	}
	buf = append(buf[:0], a.cache[start:start+n]...)
	return buf
}

// Clear releases every block but the first and rebuilds the free list,
// invalidating all nodes and the adjacency cache. When nothing has been
// allocated since the previous clear, the rebuild is skipped entirely so
// repeated no-op resets stay cheap.
func (a *Arena) Clear() {
	a.blocks = a.blocks[:1]

	if a.allocated > 0 {
		a.freeMem.InitSentinel()
		clear(a.buckets)
		first := a.blocks[0]
		for i := range first {
			a.freeMem.AddBefore(&first[i])
		}
	}
	a.available = a.blockSize
	a.allocated = 0
	a.cache = a.cache[:0]
}

// AllStates appends the state of every node stamped with frame to buf.
// Useful for visualizing what the engine touched during the last search.
func (a *Arena) AllStates(frame uint32, buf []model.State) []model.State {
	for _, block := range a.blocks {
		for i := range block {
			if block[i].Frame == frame {
				buf = append(buf, block[i].State)
			}
		}
	}
	return buf
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	nodeSize := uint64(unsafe.Sizeof(Node{}))
	entrySize := uint64(unsafe.Sizeof(NodeCost{}))
	return Stats{
		BlocksAllocated: uint64(len(a.blocks)),
		BytesReserved:   uint64(len(a.blocks)*a.blockSize) * nodeSize,
		BytesUsed:       uint64(a.allocated) * nodeSize,
		NodesAllocated:  uint64(a.allocated),
		CacheBytes:      uint64(a.cacheCap) * entrySize,
		CacheUsedBytes:  uint64(len(a.cache)) * entrySize,
		HashCollisions:  a.collisions,
	}
}
