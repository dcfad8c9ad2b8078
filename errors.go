package isosurf

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMesh is returned when cell connectivity references vertices
	// that do not exist or the field buffers have inconsistent lengths.
	ErrMalformedMesh = errors.New("malformed mesh")
	// ErrDegenerateEdge is returned in strict mode when an active edge has equal corner values.
	ErrDegenerateEdge = errors.New("degenerate edge: equal corner values")
	// ErrLoad wraps failures fetching or decoding the field buffers.
	ErrLoad = errors.New("scalar field load failed")
)

// MalformedMeshError describes where a mesh failed validation.
// It matches ErrMalformedMesh with errors.Is.
type MalformedMeshError struct {
	// Cell and Corner locate the offending index. Both are -1 when the
	// error concerns buffer lengths rather than a single index.
	Cell        int
	Corner      int
	Index       uint32
	NumVertices int
	Reason      string
}

func (e *MalformedMeshError) Error() string {
	if e.Cell < 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedMesh, e.Reason)
	}
	return fmt.Sprintf("%s: cell %d corner %d references vertex %d, have %d vertices",
		ErrMalformedMesh, e.Cell, e.Corner, e.Index, e.NumVertices)
}

func (e *MalformedMeshError) Unwrap() error { return ErrMalformedMesh }

func lengthError(format string, args ...any) error {
	return &MalformedMeshError{Cell: -1, Corner: -1, Reason: fmt.Sprintf(format, args...)}
}
