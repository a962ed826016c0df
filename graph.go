package pathgo

import (
	"github.com/gridmind/pathgo/model"
)

// Graph is the capability contract the client implements and the engine
// consumes. The engine calls back into the Graph to learn edge costs and
// heuristic estimates; it never stores or mutates client state.
//
// Implementations must NOT call back into the Pather: a solve is not
// reentrant against the same engine instance.
type Graph interface {
	// EstimateCost returns a lower bound on the true cost between two
	// states. It must never overestimate (admissibility) or optimality is
	// lost; it should also be consistent, since closed records are never
	// reopened. It should be cheap and side-effect-free.
	EstimateCost(a, b model.State) float32

	// AdjacentCost appends the exact outgoing edges of s to buf and returns
	// the extended slice. Results may be cached and replayed by the engine,
	// so the same state must yield identical edges on every call within a
	// reset epoch. Use model.InfiniteCost for a non-traversable edge.
	AdjacentCost(s model.State, buf []model.StateCost) []model.StateCost
}
