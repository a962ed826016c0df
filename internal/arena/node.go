package arena

import (
	"github.com/gridmind/pathgo/model"
)

// Node is the engine's bookkeeping record for one state within one frame.
// There is at most one Node per distinct state across the arena's lifetime;
// a Node surviving from an earlier frame is reinitialized in place the next
// time it is touched.
type Node struct {
	State model.State

	CostFromStart float32 // exact accumulated cost, InfiniteCost if unknown
	EstToGoal     float32 // heuristic estimate, InfiniteCost if unknown
	TotalCost     float32 // CostFromStart + EstToGoal, kept materialized

	// Parent is a weak back-reference used only for path reconstruction.
	Parent *Node

	// Frame distinguishes current from stale cost values without clearing.
	Frame uint32

	// NumAdjacent is -1 while the neighbor list has never been queried,
	// 0 for a state known to have no outgoing edges, and the cached list
	// length otherwise.
	NumAdjacent int

	// CacheIndex is the node's offset into the adjacency cache, -1 if the
	// list is uncached.
	CacheIndex int

	// child holds the identity-ordered collision tree links of the hash
	// bucket this node lives in. [0] = lesser states, [1] = greater.
	child [2]*Node

	// next/prev serve double duty: free-list membership while unallocated,
	// open-list (or closed-chain) membership while in a search.
	next, prev *Node

	InOpen   bool
	InClosed bool
}

// Init stamps the node into the given frame with fresh cost fields. Links,
// adjacency bookkeeping, and bucket-tree position are deliberately left
// intact: they describe the state's identity and edge structure, which
// outlive any single frame.
func (n *Node) Init(frame uint32, state model.State, costFromStart, estToGoal float32, parent *Node) {
	n.State = state
	n.CostFromStart = costFromStart
	n.EstToGoal = estToGoal
	n.CalcTotalCost()
	n.Parent = parent
	n.Frame = frame
	n.InOpen = false
	n.InClosed = false
}

// Clear resets a node to its never-used condition. Called once when a node
// is taken off the free list, never on reuse within a later frame.
func (n *Node) Clear() {
	*n = Node{
		NumAdjacent: -1,
		CacheIndex:  -1,
	}
}

// InitSentinel turns the node into a list sentinel: infinite cost on every
// field and self-linked.
func (n *Node) InitSentinel() {
	n.Clear()
	n.Init(0, 0, model.InfiniteCost, model.InfiniteCost, nil)
	n.next = n
	n.prev = n
}

// CalcTotalCost recomputes TotalCost from the two cost inputs. Either input
// being infinite makes the total infinite.
func (n *Node) CalcTotalCost() {
	if n.CostFromStart < model.InfiniteCost && n.EstToGoal < model.InfiniteCost {
		n.TotalCost = n.CostFromStart + n.EstToGoal
	} else {
		n.TotalCost = model.InfiniteCost
	}
}

// Unlink removes the node from whichever intrusive list it is on.
func (n *Node) Unlink() {
	n.next.prev = n.prev
	n.prev.next = n.next
	n.next = nil
	n.prev = nil
}

// AddBefore inserts other immediately before n.
func (n *Node) AddBefore(other *Node) {
	other.next = n
	other.prev = n.prev
	n.prev.next = other
	n.prev = other
}

// Next returns the node's successor on whichever intrusive list it is on.
// Walking from a sentinel, the traversal ends back at the sentinel.
func (n *Node) Next() *Node {
	return n.next
}

// MarkClosed tags the node as expanded. Open and closed membership are
// mutually exclusive; the caller pops the node off the open list first.
func (n *Node) MarkClosed() {
	if n.InOpen {
		panic("arena: closing a node that is still open")
	}
	n.InClosed = true
}

// UnmarkClosed clears the closed tag. Unused by the standard search, which
// never reopens closed nodes, but required by policies that do.
func (n *Node) UnmarkClosed() {
	if !n.InClosed || n.InOpen {
		panic("arena: unmark of a node that is not closed")
	}
	n.InClosed = false
}

// NodeCost pairs a resolved neighbor node with its exact edge cost. An
// InfiniteCost edge is non-traversable and must be filtered before
// relaxation.
type NodeCost struct {
	Node *Node
	Cost float32
}
