// Package model defines core types shared by the pathgo engine and its
// internal packages.
//
// # Identity Types
//
//   - State: opaque, client-owned identity for a graph vertex (uint64)
//
// # Data Types
//
//   - StateCost: a (state, edge cost) pair produced by graph enumeration
//
// The engine never interprets the value of a State. Clients that model
// vertices as objects typically intern them to handles; clients that model
// vertices as coordinates encode them, e.g. y<<32|x.
package model

import (
	"fmt"
	"math"
)

// State is the opaque identity of a graph vertex. It is owned by the caller
// and is never interpreted, dereferenced, or freed by the engine. A State
// must be unique per vertex and stable until Reset is called.
type State uint64

// String returns a string representation of the State.
func (s State) String() string {
	return fmt.Sprintf("State(%#x)", uint64(s))
}

// InfiniteCost marks an edge as non-traversable and a cost field as
// uninitialized. Edges with InfiniteCost are filtered before relaxation.
const InfiniteCost = float32(math.MaxFloat32)

// StateCost carries the exact cost of moving to a neighboring state.
type StateCost struct {
	State State
	Cost  float32
}
