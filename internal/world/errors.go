package world

import "errors"

// ErrInvariantViolation is returned when a graph operation would break
// a containment invariant (spec §4.1: adding an object to itself or a
// descendant).
var ErrInvariantViolation = errors.New("world: invariant violation")

// ErrGone is returned when an operation targets a destroyed object
// (spec §4.1).
var ErrGone = errors.New("world: object is gone")
