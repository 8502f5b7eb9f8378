// Package randomwalk builds an alternate linear cost matrix for the LSAPE
// solver from k-step walk counts instead of raw edge costs: each
// node is described by the number of walks of length 1..WalkLength
// originating from it, and substitution cost becomes a damped distance
// between the two nodes' walk-count profiles rather than a single edge
// comparison. This gives multistart a structurally different seed than the
// star-augmented cost matrix (bipartite/lsape), which is exactly the point
// of feeding both into a K-best/IPFP pipeline: different seeds escape
// different local optima.
package randomwalk
