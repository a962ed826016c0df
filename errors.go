package pathgo

import (
	"errors"
	"fmt"
)

// ErrNilGraph is returned when a Pather is constructed without a graph.
var ErrNilGraph = errors.New("graph must not be nil")

// ErrInvalidBlockSize indicates a non-positive arena block size.
type ErrInvalidBlockSize struct {
	BlockSize int
}

func (e *ErrInvalidBlockSize) Error() string {
	return fmt.Sprintf("invalid block size: %d", e.BlockSize)
}

// ErrInvalidTypicalAdjacency indicates a non-positive typical adjacency
// count.
type ErrInvalidTypicalAdjacency struct {
	TypicalAdjacency int
}

func (e *ErrInvalidTypicalAdjacency) Error() string {
	return fmt.Sprintf("invalid typical adjacency: %d", e.TypicalAdjacency)
}
