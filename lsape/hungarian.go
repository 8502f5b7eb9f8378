package lsape

import "gonum.org/v1/gonum/mat"

/*
solveSquareRunner — Hungarian algorithm (successive shortest augmenting
paths with dual potentials), Kuhn-Munkres formulation.

Description:

	Solves the square N×N assignment problem min Σ cost[i,ρ(i)] over
	permutations ρ, returning ρ and dual potentials u (rows), v (columns)
	satisfying u[i]+v[j] ≤ cost[i,j] with equality on assigned cells.

Algorithm outline (one row at a time):

	 1. Add row i to the alternating tree rooted at i (p[0]=i).
	 2. Grow the tree via Dijkstra-like relaxation over reduced costs
	    cost[i,j]-u[i]-v[j], tracking the minimum-slack column reachable.
	 3. Update potentials by the found slack delta; repeat until an
	    unmatched column is reached, then augment along the alternating
	    path back to row i.

Time complexity: O(N³). Memory: O(N²) for the cost matrix plus O(N) work
vectors — the same asymptotic shape as an augmenting-path max-flow solver:
both grow a tree of tight/residual edges from a single source, augment,
and repeat once per unit of demand.
*/
type solveSquareRunner struct {
	cost *mat.Dense
	n    int
	u, v []float64 // 1-indexed by convention below; index 0 unused
	p    []int     // p[j] = row currently assigned to column j (1-indexed rows)
	way  []int
}

func newSolveSquareRunner(cost *mat.Dense) *solveSquareRunner {
	n, _ := cost.Dims()
	return &solveSquareRunner{
		cost: cost,
		n:    n,
		u:    make([]float64, n+1),
		v:    make([]float64, n+1),
		p:    make([]int, n+1),
		way:  make([]int, n+1),
	}
}

// run executes the Hungarian algorithm and returns rowToCol (0-indexed,
// rowToCol[i] = assigned column of row i) and the dual potentials
// (0-indexed, length n).
func (r *solveSquareRunner) run() (rowToCol []int, u, v []float64) {
	n := r.n
	for i := 1; i <= n; i++ {
		r.p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := r.p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := r.cost.At(i0-1, j-1) - r.u[i0] - r.v[j]
				if cur < minv[j] {
					minv[j] = cur
					r.way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					r.u[r.p[j]] += delta
					r.v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if r.p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := r.way[j0]
			r.p[j0] = r.p[j1]
			j0 = j1
		}
	}

	rowToCol = make([]int, n)
	for j := 1; j <= n; j++ {
		rowToCol[r.p[j]-1] = j - 1
	}
	u = make([]float64, n)
	v = make([]float64, n)
	for i := 1; i <= n; i++ {
		u[i-1] = r.u[i]
	}
	for j := 1; j <= n; j++ {
		v[j-1] = r.v[j]
	}
	return rowToCol, u, v
}

// SolveSquare solves the square LSAP on cost and returns the row→column
// permutation and dual potentials. Exported for kbest, which needs the
// (n+m)-space duals directly to build and prune its equality digraph over
// C_L, rather than the LSAPE-space duals returned by Solve.
func SolveSquare(cost *mat.Dense) (rowToCol []int, u, v []float64, err error) {
	n, m := cost.Dims()
	if n == 0 || m == 0 {
		return nil, nil, nil, ErrEmptyMatrix
	}
	r := newSolveSquareRunner(cost)
	rowToCol, u, v = r.run()
	return rowToCol, u, v, nil
}
