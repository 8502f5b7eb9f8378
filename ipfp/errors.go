package ipfp

import "errors"

// ErrDirectednessMismatch is returned when g1 and g2 disagree on Directed():
// the quadratic term's undirected-halving rule cannot be applied consistently
// to a mixed pair.
var ErrDirectednessMismatch = errors.New("ipfp: directedness mismatch between graphs")

// ErrSeedSizeMismatch is returned when the seed mapping's dimensions do not
// match g1.Size()/g2.Size().
var ErrSeedSizeMismatch = errors.New("ipfp: seed mapping size does not match graph pair")

// ErrInvalidOptions is returned when Options carries a non-positive MaxIter
// or a non-positive Epsilon.
var ErrInvalidOptions = errors.New("ipfp: invalid options")
