package arena

import (
	"github.com/gridmind/pathgo/model"
)

// OpenList is the search frontier: an intrusive doubly-linked sequence of
// nodes kept sorted ascending by total cost. A sentinel with infinite cost
// closes the ring, so insertion scans always terminate without a nil check.
//
// Costs only ever decrease for a node that is already open, so Update only
// has to handle the decrease-key case efficiently.
type OpenList struct {
	sentinel Node
}

// NewOpenList returns an empty open list.
func NewOpenList() *OpenList {
	l := &OpenList{}
	l.sentinel.InitSentinel()
	return l
}

// Clear abandons whatever nodes are still linked and empties the list.
// The abandoned nodes' links become stale, which is harmless: they are only
// trusted after a fresh Init, which re-stamps membership flags.
func (l *OpenList) Clear() {
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
}

// Empty reports whether the frontier is exhausted.
func (l *OpenList) Empty() bool {
	return l.sentinel.next == &l.sentinel
}

// Push inserts a node in cost order. The node must not already be open or
// closed, and must have a finite total cost; the sentinel's infinite cost
// is what guarantees the scan finds a spot.
func (l *OpenList) Push(n *Node) {
	if n.InOpen || n.InClosed {
		panic("arena: push of a node already in open or closed")
	}
	if n.TotalCost >= model.InfiniteCost {
		panic("arena: push of a node with infinite cost")
	}

	iter := l.sentinel.next
	for {
		if n.TotalCost < iter.TotalCost {
			iter.AddBefore(n)
			n.InOpen = true
			return
		}
		iter = iter.next
	}
}

// Pop removes and returns the minimum-cost node. Popping an empty list is a
// contract violation.
func (l *OpenList) Pop() *Node {
	if l.Empty() {
		panic("arena: pop of empty open list")
	}
	n := l.sentinel.next
	n.Unlink()

	if n.InClosed || !n.InOpen {
		panic("arena: popped node with inconsistent membership")
	}
	n.InOpen = false
	return n
}

// Update repositions an open node whose cost just changed. A node now
// cheaper than its predecessor is rescanned from the head; a node now more
// expensive than its successor is scanned forward from there.
func (l *OpenList) Update(n *Node) {
	if !n.InOpen {
		panic("arena: update of a node that is not open")
	}

	if n.prev != &l.sentinel && n.TotalCost < n.prev.TotalCost {
		n.Unlink()
		l.sentinel.next.AddBefore(n)
	}

	if n.TotalCost > n.next.TotalCost {
		iter := n.next
		n.Unlink()
		for n.TotalCost > iter.TotalCost {
			iter = iter.next
		}
		iter.AddBefore(n)
	}
}
