// Package gedcore approximates graph edit distance between labeled graphs.
//
// Graph edit distance (GED) is the minimum total cost of node/edge
// insertions, deletions, and substitutions that transform one graph into
// another. Exact GED is NP-hard; gedcore computes a polynomial-time upper
// bound via linear assignment plus local search, in three tiers of
// increasing accuracy and cost:
//
//	ged.BipartiteGed — solve one LSAPE instance, no refinement.
//	ged.RefineFrom   — IPFP local search from a caller-supplied mapping.
//	ged.Ged          — the full pipeline: K-best LSAPE seeds refined by IPFP
//	                    (in parallel when ged.WithParallelism > 1), best kept.
//
// Subpackages:
//
//	gedgraph     — the Graph interface plus Dense/CSR implementations.
//	mapping      — the node-correspondence type shared by every solver.
//	lsape        — cost-matrix construction and the Hungarian LSAP/LSAPE solver.
//	bipartitescc — the equality digraph and its SCC decomposition.
//	kbest        — K-best perfect matching enumeration over a pruned SCC.
//	bipartite    — the unrefined LSAPE baseline.
//	ipfp         — Integer Projected Fixed Point local search.
//	randomwalk   — an alternate seed built from k-step walk-count profiles.
//	multistart   — the parallel-by-seed refinement driver.
//	gedconfig    — viper-backed runtime tunables.
//	ged          — the top-level driver tying every component together.
package gedcore
