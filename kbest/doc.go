// Package kbest enumerates up to K distinct perfect matchings of a lifted
// LSAP cost matrix C_L, all of optimal cost, for use as multistart seeds.
//
// Within a single strongly connected component of the
// pruned equality digraph, every surviving arc is tight, i.e. has zero
// reduced cost. Consequently any perfect matching built entirely from
// intra-SCC tight arcs is itself cost-optimal for that component, and
// enumerating K best matchings collapses to enumerating K distinct perfect
// matchings of an unweighted bipartite subgraph — a simpler, standard
// backtracking search (permute.go) rather than Uno-style explicit
// alternating-cycle flipping. The two are equivalent: flipping an
// alternating cycle and re-choosing a bipartite matching from scratch reach
// the same set of optimal assignments, since both are exactly "any perfect
// matching using only zero-reduced-cost edges."
package kbest
