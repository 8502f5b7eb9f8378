package ged

import "errors"

// ErrInvalidBudget is returned when Options.K is not positive: at least one
// seed must be requested.
var ErrInvalidBudget = errors.New("ged: k-best budget must be positive")

// ErrNilGraph is returned when either graph argument is nil.
var ErrNilGraph = errors.New("ged: nil graph")
