// ABOUTME: Error taxonomy for traversal-history operations
// ABOUTME: Bounds violations, unexpanded-head, and wrapped selection errors

package graph

import (
	"errors"
	"fmt"
)

// ErrUnexpandedHead is returned by Path.Push when the head of the path is
// an unexpanded edge, so there is no vertex to select a move from. It is
// distinct from bounds violations for diagnostics.
var ErrUnexpandedHead = errors.New("path head is unexpanded")

// ListKind distinguishes which edge list a bounds violation refers to.
type ListKind uint8

const (
	ChildEdges ListKind = iota
	ParentEdges
)

func (k ListKind) String() string {
	if k == ParentEdges {
		return "parent"
	}
	return "child"
}

// BoundsError reports a selector choosing a child or parent index that is
// out of range. It carries the requested index and the actual count so the
// caller can diagnose the offending selection.
type BoundsError struct {
	List      ListKind
	Requested int
	Count     int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("selector chose %s %d of %d", e.List, e.Requested, e.Count)
}

// SelectionError wraps an error returned by a caller-supplied selector,
// re-surfacing it verbatim through Unwrap. It introduces no failure mode of
// its own.
type SelectionError struct {
	Err error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selector failed: %v", e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
