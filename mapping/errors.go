package mapping

import "errors"

// ErrInconsistent is returned by Validate when fwd and rev disagree about a
// non-epsilon correspondence (see the Mapping type's doc for the invariant).
var ErrInconsistent = errors.New("mapping: fwd/rev disagree on a non-epsilon pair")

// ErrOutOfRange is returned by Validate when an entry names an index outside
// its valid augmented range.
var ErrOutOfRange = errors.New("mapping: entry out of range")

// ErrNonFiniteCost is returned by Cost when a CostFunction yields a NaN,
// infinite, or negative value.
var ErrNonFiniteCost = errors.New("mapping: cost function returned a non-finite value")
