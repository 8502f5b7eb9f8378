package lsape

import "errors"

// ErrNonFiniteCost is returned when a CostFunction yields NaN or ±Inf: a
// numeric error raised at the driver boundary, never silently clamped.
var ErrNonFiniteCost = errors.New("lsape: cost function returned a non-finite value")

// ErrEmptyMatrix is returned by Solve and SolveSquare when the cost matrix
// has a zero dimension.
var ErrEmptyMatrix = errors.New("lsape: cost matrix has a zero dimension")
