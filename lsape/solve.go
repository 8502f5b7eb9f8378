package lsape

import "gonum.org/v1/gonum/mat"

// Solve runs the default HungarianSolver over C. It is a convenience entry
// point for callers happy with the reference solver; callers that need a
// different one construct it and call its SolveLSAPE method directly, which
// is what bipartite.GED and ipfp's per-iteration gradient LP do with the
// caller-supplied Solver they are configured with.
func Solve(C *mat.Dense) (Result, error) {
	return HungarianSolver{}.SolveLSAPE(C)
}
