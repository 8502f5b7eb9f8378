// Package ged is gedcore's top-level driver: it wires the star-augmented
// cost matrix (lsape), K-best seed enumeration (kbest), IPFP local search
// (ipfp), and the multistart worker pool (multistart) into three entry
// points of increasing cost and accuracy:
//
//	BipartiteGed — the unrefined LSAPE baseline, no iteration.
//	Ged          — full pipeline: K-best seeds refined by IPFP (in parallel
//	               when WithParallelism > 1), best kept.
//	RefineFrom   — IPFP refinement from a caller-supplied seed, skipping
//	               star-augmented cost-matrix construction and seed
//	               enumeration entirely.
package ged
