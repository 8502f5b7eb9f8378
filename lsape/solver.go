package lsape

import "gonum.org/v1/gonum/mat"

// Result is the outcome of solving an LSAPE instance: the primal mapping
// (RhoFwd/RhoRev, in (n+1)/(m+1)-space) plus dual potentials and the
// primal cost.
type Result struct {
	RhoFwd []int     // len n, values in [0,m]
	RhoRev []int     // len m, values in [0,n]
	U      []float64 // len n+1
	V      []float64 // len m+1
	Cost   float64
}

// Solver is the LSAP/LSAPE primal solver contract: consume a
// rectangular (n+1)×(m+1) cost matrix, return a primal mapping and dual
// potentials satisfying u[i]+v[j] ≤ C[i,j] with equality on assigned cells.
// bipartite, ipfp and randomwalk depend on this interface, not on any
// concrete solver, so an external LSAPE library can be substituted there;
// kbest solves its lifted matrix with SolveSquare directly.
type Solver interface {
	SolveLSAPE(C *mat.Dense) (Result, error)
}

// HungarianSolver is the default Solver: it lifts C to the square LSAP
// matrix C_L (Lift) and runs the Hungarian algorithm (SolveSquare), then
// decodes the permutation back to LSAPE (fwd, rev) form via DecodeLift's
// translation rule.
//
// Dual convention: U[n] and V[m] (the ε-row/column duals) are fixed at 0;
// U[i] and V[j] for i<n, j<m are taken directly from the lift's dual
// solution. This keeps the row/column reduced-cost inequality
// u[i]+v[j] ≤ C[i,j] tight on every assigned substitution cell (the top-left
// block of the lift is unchanged by the lifting), and preserves the global
// property Σu+Σv = cost for the underlying square problem; it does not
// guarantee tightness on deletion/insertion cells specifically, which no
// downstream gedcore consumer relies on (see DESIGN.md).
type HungarianSolver struct{}

var _ Solver = HungarianSolver{}

func (HungarianSolver) SolveLSAPE(C *mat.Dense) (Result, error) {
	nr, nc := C.Dims()
	if nr == 0 || nc == 0 {
		return Result{}, ErrEmptyMatrix
	}
	n, m := nr-1, nc-1
	if n == 0 && m == 0 {
		// Nothing to assign: the lifting would be 0×0.
		return Result{RhoFwd: []int{}, RhoRev: []int{}, U: make([]float64, 1), V: make([]float64, 1)}, nil
	}

	L := Lift(C)
	perm, uL, vL, err := SolveSquare(L)
	if err != nil {
		return Result{}, err
	}

	rhoFwd, rhoRev := DecodeLift(perm, n, m)

	u := make([]float64, n+1)
	v := make([]float64, m+1)
	copy(u, uL[:n])
	copy(v, vL[:m])

	cost := 0.0
	for i, j := range rhoFwd {
		if j < m {
			cost += C.At(i, j)
		} else {
			cost += C.At(i, m)
		}
	}
	for j, i := range rhoRev {
		if i >= n {
			cost += C.At(n, j)
		}
	}

	return Result{RhoFwd: rhoFwd, RhoRev: rhoRev, U: u, V: v, Cost: cost}, nil
}

// DecodeLift translates a permutation ρ over N=n+m (as returned by
// SolveSquare on a Lift(C)) into the LSAPE (fwd, rev) pair, per this
// translation rule:
//
//	i<n, ρ[i]<m  ⇒ fwd[i]=ρ[i]
//	i<n, ρ[i]≥m  ⇒ fwd[i]=ε (m)
//	symmetric rule for the reverse mapping on the Y side.
func DecodeLift(perm []int, n, m int) (fwd, rev []int) {
	fwd = make([]int, n)
	rev = make([]int, m)
	for j := range rev {
		rev[j] = n
	}
	for i := 0; i < n; i++ {
		if perm[i] < m {
			fwd[i] = perm[i]
			rev[perm[i]] = i
		} else {
			fwd[i] = m
		}
	}
	// Resolve the Y side via the inverse permutation: invPerm[col] = row.
	// perm[n+j] indexes a column, not a row, so it cannot be read directly;
	// the rows matched to column j (whether j<m or j is part of the
	// bottom-right zero block) are what determine insertion vs pairing.
	invPerm := make([]int, n+m)
	for i, j := range perm {
		invPerm[j] = i
	}
	for j := 0; j < m; j++ {
		i := invPerm[j]
		if i < n {
			rev[j] = i
		} else {
			rev[j] = n
		}
	}
	return fwd, rev
}
