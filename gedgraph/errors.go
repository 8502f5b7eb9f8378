package gedgraph

import "errors"

// ErrNilGraph is returned when a nil *Dense or *CSR is passed where a Graph
// is required.
var ErrNilGraph = errors.New("gedgraph: nil graph")

// ErrDirectednessMismatch is returned by callers that require both graphs
// in a pair to agree on directedness (e.g. the undirected-halving rule in
// ipfp forbids mixing a directed and an undirected graph).
var ErrDirectednessMismatch = errors.New("gedgraph: directedness mismatch between graphs")

