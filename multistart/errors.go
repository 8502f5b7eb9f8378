package multistart

import "errors"

// ErrNoSeeds is returned when Run is called with an empty seed slice.
var ErrNoSeeds = errors.New("multistart: no seeds provided")

// ErrAllSeedsFailed is returned, wrapping the last seed's error, when every
// seed's refinement returned an error; individual failures are still
// reported in Result.Seeds.
var ErrAllSeedsFailed = errors.New("multistart: every seed failed to refine")
