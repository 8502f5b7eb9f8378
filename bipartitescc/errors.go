package bipartitescc

import "errors"

// ErrDimensionMismatch is returned by Build when perm/u/v are not sized
// consistently with C_L.
var ErrDimensionMismatch = errors.New("bipartitescc: perm/u/v size does not match cost matrix")
