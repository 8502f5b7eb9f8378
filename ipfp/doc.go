// Package ipfp implements Integer Projected Fixed Point refinement:
// starting from a seed mapping, it locally minimizes the quadratic
// assignment objective f(X) = ⟨C,X⟩ + ½⟨X,D(X)⟩ over the bistochastic
// polytope via a Frank-Wolfe-style gradient step (solved as an LSAPE at
// each iteration) followed by an exact line search, and projects the final
// (possibly fractional) iterate back to a permutation.
//
// The refiner is structured as a package-level entry point (Refine) plus a
// private runner struct carrying all per-call state: state lives on the
// runner, never in package globals, so Refine is safe to call concurrently
// from multistart's worker pool.
package ipfp
