// Package bipartite implements the LSAPE-only approximation of graph edit
// distance: build the star-augmented cost matrix, solve it once, and
// decode the result to a mapping. No refinement is performed — this is the
// baseline every other solver in gedcore is measured against, since
// multistart never returns a result worse than this baseline.
package bipartite
