// Package bipartitescc builds the bipartite equality digraph induced by an
// optimal LSAP dual on the lifted cost matrix C_L, and decomposes it into
// strongly connected components.
//
// The digraph itself is a gonum.org/v1/gonum/graph/simple.DirectedGraph —
// gonum's graph/topo.TarjanSCC does the traversal, replacing the hand-rolled
// global-state Tarjan of the original C++ reference (BestPerfectMatching.h)
// with the ecosystem implementation. What remains bespoke is everything
// gonum has no notion of: the equality-edge construction rule and the
// cross-SCC pruning that only this domain's optimality argument justifies.
package bipartitescc
