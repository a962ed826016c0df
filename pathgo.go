// Package pathgo provides a reusable point-to-point and bounded-radius
// shortest-path engine over an arbitrary client-defined graph.
//
// States are opaque identities the engine never interprets; the client
// supplies edge costs and heuristic estimates through the Graph contract.
// The engine is built to be called repeatedly across many solve generations
// without per-call allocation churn:
//
//   - Node records live in an arena that deduplicates by state identity and
//     is invalidated lazily by frame stamping instead of being cleared.
//   - Neighbor lists are cached after the first enumeration, so the graph
//     callback runs once per state per reset epoch.
//   - With the path cache enabled, any (start, end) pair a previous search
//     resolved, including unreachable pairs, is answered without a search.
//
// # Quick Start
//
//	p, err := pathgo.New(graph,
//	    pathgo.WithBlockSize(1024),
//	    pathgo.WithPathCache(true),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	result := p.Solve(start, end)
//	if result.Status == pathgo.StatusSolved {
//	    for _, s := range result.States {
//	        visit(s)
//	    }
//	}
//
// # Correctness Preconditions
//
// Closed records are never reopened, so optimal paths require the heuristic
// to be admissible and consistent. Edge enumeration must be deterministic
// within a reset epoch, since results are cached and replayed. Call Reset
// whenever the graph's costs or topology change.
//
// A Pather is not safe for concurrent use and a solve is not reentrant:
// graph callbacks must not invoke any engine operation.
package pathgo

import (
	"time"

	"github.com/gridmind/pathgo/internal/arena"
	"github.com/gridmind/pathgo/internal/pathcache"
	"github.com/gridmind/pathgo/model"
)

// Status classifies the outcome of a Solve call.
type Status int

const (
	// StatusSolved means an optimal path was found.
	StatusSolved Status = iota
	// StatusNoPath means the destination is unreachable from the start.
	StatusNoPath
	// StatusStartEndSame means start and end were the same state; the
	// trivial empty path is returned, distinct from StatusNoPath.
	StatusStartEndSame
)

// String returns a string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusNoPath:
		return "no-path"
	case StatusStartEndSame:
		return "start-end-same"
	default:
		return "unknown"
	}
}

// Result is the outcome of a point-to-point solve. States holds the full
// start→end sequence when Status is StatusSolved and is empty otherwise;
// check Status rather than len(States) to tell a trivial path from no path.
type Result struct {
	States    []model.State
	TotalCost float32
	Status    Status
}

// Solved reports whether a path was found (including the trivial one).
func (r Result) Solved() bool {
	return r.Status != StatusNoPath
}

// CacheStats reports path cache effectiveness. All fields are zero when the
// cache is disabled.
type CacheStats struct {
	BytesAllocated int
	BytesUsed      int
	MemoryFraction float32

	HitCount    int
	MissCount   int
	HitFraction float32
}

// Pather solves shortest-path queries against a client graph. Create one
// with New and reuse it across calls; per-call state is recycled internally.
type Pather struct {
	graph   Graph
	arena   *arena.Arena
	open    *arena.OpenList
	cache   *pathcache.Cache // nil when memoization is disabled
	frame   uint32
	logger  *Logger
	metrics MetricsCollector

	// Scratch buffers reused across calls so the steady state allocates
	// nothing but result slices.
	stateCostBuf []model.StateCost
	nodeCostBuf  []arena.NodeCost
	edgeCostBuf  []float32
}

// New creates a Pather over the given graph.
func New(graph Graph, optFns ...Option) (*Pather, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	o := applyOptions(optFns)
	if o.blockSize <= 0 {
		return nil, &ErrInvalidBlockSize{BlockSize: o.blockSize}
	}
	if o.typicalAdjacency <= 0 {
		return nil, &ErrInvalidTypicalAdjacency{TypicalAdjacency: o.typicalAdjacency}
	}

	p := &Pather{
		graph:   graph,
		arena:   arena.New(o.blockSize, o.typicalAdjacency),
		open:    arena.NewOpenList(),
		logger:  o.logger,
		metrics: o.metrics,
	}
	if o.cacheEnabled {
		p.cache = pathcache.New(o.blockSize * pathCacheSizeFactor)
	}
	return p, nil
}

// Solve finds the optimal path from start to end. The result's Status
// distinguishes a found path, an unreachable destination, and the trivial
// start==end case.
func (p *Pather) Solve(start, end model.State) Result {
	begin := time.Now()
	result := p.solve(start, end)
	p.metrics.RecordSolve(result.Status, time.Since(begin))
	p.logger.LogSolve(uint64(start), uint64(end), result.Status, len(result.States))
	return result
}

func (p *Pather) solve(start, end model.State) Result {
	if start == end {
		return Result{Status: StatusStartEndSame}
	}

	if p.cache != nil {
		states, cost, outcome := p.cache.Solve(start, end)
		switch outcome {
		case pathcache.Hit:
			return Result{States: states, TotalCost: cost, Status: StatusSolved}
		case pathcache.HitNoPath:
			return Result{Status: StatusNoPath}
		}
	}

	p.frame++
	p.open.Clear()

	seed := p.arena.GetNode(p.frame, start, 0, p.graph.EstimateCost(start, end), nil)
	p.open.Push(seed)

	for !p.open.Empty() {
		node := p.open.Pop()

		if node.State == end {
			states := p.goalReached(node, start, end)
			return Result{States: states, TotalCost: node.CostFromStart, Status: StatusSolved}
		}

		node.MarkClosed()

		neighbors := p.nodeNeighbors(node)
		for i := range neighbors {
			// Filter out non-traversable edges before relaxation.
			if neighbors[i].Cost == model.InfiniteCost {
				continue
			}

			child := neighbors[i].Node
			newCost := node.CostFromStart + neighbors[i].Cost

			if child.InOpen || child.InClosed {
				if newCost < child.CostFromStart {
					child.Parent = node
					child.CostFromStart = newCost
					child.EstToGoal = p.graph.EstimateCost(child.State, end)
					child.CalcTotalCost()
					if child.InOpen {
						p.open.Update(child)
					}
					// Closed nodes are not reopened; an admissible and
					// consistent heuristic never needs it.
				}
			} else {
				child.Parent = node
				child.CostFromStart = newCost
				child.EstToGoal = p.graph.EstimateCost(child.State, end)
				child.CalcTotalCost()
				p.open.Push(child)
			}
		}
	}

	if p.cache != nil {
		p.cache.AddNoSolution(end, []model.State{start})
	}
	return Result{Status: StatusNoPath}
}

// SolveWithinBudget expands the frontier from start by pure accumulated cost
// and returns every state whose true shortest distance is at most maxCost,
// paired with that distance. start itself is included at cost 0. No
// heuristic is consulted and the path cache is not involved.
func (p *Pather) SolveWithinBudget(start model.State, maxCost float32) []model.StateCost {
	begin := time.Now()
	found := p.solveWithinBudget(start, maxCost)
	p.metrics.RecordSolveWithinBudget(len(found), time.Since(begin))
	p.logger.LogSolveWithinBudget(uint64(start), maxCost, len(found))
	return found
}

func (p *Pather) solveWithinBudget(start model.State, maxCost float32) []model.StateCost {
	p.frame++
	p.open.Clear()

	// Popped nodes chain off a local sentinel so the sweep at the end walks
	// exactly the visited set.
	var closedSentinel arena.Node
	closedSentinel.InitSentinel()

	seed := p.arena.GetNode(p.frame, start, 0, 0, nil)
	p.open.Push(seed)

	for !p.open.Empty() {
		node := p.open.Pop()
		node.MarkClosed()
		closedSentinel.AddBefore(node)

		if node.TotalCost > maxCost {
			// Too far to expand, but it stays visited.
			continue
		}

		neighbors := p.nodeNeighbors(node)
		for i := range neighbors {
			if neighbors[i].Cost == model.InfiniteCost {
				continue
			}
			if node.CostFromStart >= model.InfiniteCost {
				panic("pathgo: relaxing from a node with infinite cost")
			}

			child := neighbors[i].Node
			newCost := node.CostFromStart + neighbors[i].Cost

			if (child.InOpen || child.InClosed) && child.CostFromStart <= newCost {
				continue
			}

			child.Parent = node
			child.CostFromStart = newCost
			child.EstToGoal = 0
			child.TotalCost = newCost

			if child.InOpen {
				p.open.Update(child)
			} else if !child.InClosed {
				p.open.Push(child)
			}
		}
	}

	var found []model.StateCost
	for node := closedSentinel.Next(); node != &closedSentinel; node = node.Next() {
		if node.TotalCost <= maxCost {
			found = append(found, model.StateCost{State: node.State, Cost: node.TotalCost})
		}
	}
	return found
}

// Reset invalidates all memoized and allocated state: every arena block but
// the first is released, the adjacency and path caches are cleared, and the
// frame counter restarts. Call it whenever the client graph changes.
func (p *Pather) Reset() {
	stats := p.arena.Stats()
	p.arena.Clear()
	p.open.Clear()
	if p.cache != nil {
		p.cache.Reset()
	}
	p.frame = 0
	p.metrics.RecordReset()
	p.logger.LogReset(stats.NodesAllocated)
}

// CacheStats returns path cache diagnostics. All fields are zero when the
// cache is disabled.
func (p *Pather) CacheStats() CacheStats {
	if p.cache == nil {
		return CacheStats{}
	}

	stats := CacheStats{
		BytesAllocated: p.cache.AllocatedBytes(),
		BytesUsed:      p.cache.UsedBytes(),
		HitCount:       p.cache.Hits(),
		MissCount:      p.cache.Misses(),
	}
	if stats.BytesAllocated > 0 {
		stats.MemoryFraction = float32(float64(stats.BytesUsed) / float64(stats.BytesAllocated))
	}
	if total := stats.HitCount + stats.MissCount; total > 0 {
		stats.HitFraction = float32(float64(stats.HitCount) / float64(total))
	}
	return stats
}

// LiveStates returns the states touched by the most recent search, in
// allocation order. Useful for visualizing engine behavior. Empty before
// the first solve and after a Reset.
func (p *Pather) LiveStates() []model.State {
	if p.frame == 0 {
		return nil
	}
	return p.arena.AllStates(p.frame, nil)
}

// nodeNeighbors returns node's outgoing edges as resolved arena nodes,
// consulting the adjacency cache first and falling back to the graph
// callback on the first query (or forever, if the cache is full). The
// returned slice aliases scratch memory valid until the next call.
func (p *Pather) nodeNeighbors(node *arena.Node) []arena.NodeCost {
	if node.NumAdjacent == 0 {
		// Known to have no neighbors.
		return nil
	}

	if node.CacheIndex < 0 {
		// Never queried, or didn't fit in the cache.
		p.stateCostBuf = p.graph.AdjacentCost(node.State, p.stateCostBuf[:0])
		node.NumAdjacent = len(p.stateCostBuf)

		p.nodeCostBuf = p.nodeCostBuf[:0]
		if len(p.stateCostBuf) == 0 {
			return nil
		}
		for _, sc := range p.stateCostBuf {
			child := p.arena.GetNode(p.frame, sc.State, model.InfiniteCost, model.InfiniteCost, nil)
			p.nodeCostBuf = append(p.nodeCostBuf, arena.NodeCost{Node: child, Cost: sc.Cost})
		}

		if start, ok := p.arena.PushCache(p.nodeCostBuf); ok {
			node.CacheIndex = start
		}
		return p.nodeCostBuf
	}

	// Cached. Entries may reference nodes from a stale frame: their cost
	// fields, not their identity or edge structure, depend on the frame, so
	// reinitialize them the moment they are read.
	p.nodeCostBuf = p.arena.ReadCache(node.CacheIndex, node.NumAdjacent, p.nodeCostBuf)
	for i := range p.nodeCostBuf {
		child := p.nodeCostBuf[i].Node
		if child.Frame != p.frame {
			child.Init(p.frame, child.State, model.InfiniteCost, model.InfiniteCost, nil)
		}
	}
	return p.nodeCostBuf
}

// goalReached reconstructs the start→end path by walking parent links back
// from the goal node and, when memoization is enabled, seeds the path cache
// with every hop's exact edge cost.
func (p *Pather) goalReached(node *arena.Node, start, end model.State) []model.State {
	count := 1
	for it := node; it.Parent != nil; it = it.Parent {
		count++
	}

	var path []model.State
	if count < 3 {
		// Short path: start and end adjacent.
		path = []model.State{start, end}
	} else {
		path = make([]model.State, count)
		path[0] = start
		path[count-1] = end
		i := count - 2
		for it := node.Parent; it.Parent != nil; it = it.Parent {
			path[i] = it.State
			i--
		}
	}

	if p.cache != nil {
		p.populateCache(path)
	}
	return path
}

// populateCache resolves the exact edge cost of every consecutive pair in
// path, from the adjacency cache where possible, and batches the result
// into the path cache.
func (p *Pather) populateCache(path []model.State) {
	p.edgeCostBuf = p.edgeCostBuf[:0]

	from := p.arena.FetchNode(path[0])
	for i := 0; i < len(path)-1; i++ {
		to := p.arena.FetchNode(path[i+1])

		found := false
		for _, nc := range p.nodeNeighbors(from) {
			if nc.Node == to {
				p.edgeCostBuf = append(p.edgeCostBuf, nc.Cost)
				found = true
				break
			}
		}
		if !found {
			panic("pathgo: path hop without a connecting edge")
		}
		from = to
	}

	p.cache.Add(path, p.edgeCostBuf)
}
