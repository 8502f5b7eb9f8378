package randomwalk

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/lsape"
)

// Options configures the walk-count substitution cost.
type Options struct {
	// WalkLength is the longest walk counted (default 3).
	WalkLength int
	// Damping decays the contribution of longer walks: length-l walks are
	// weighted Damping^(l-1) (default 0.5).
	Damping float64
	// Solver resolves the resulting cost matrix into a seed mapping.
	Solver lsape.Solver
}

// DefaultOptions returns WalkLength=3, Damping=0.5, the Hungarian solver.
func DefaultOptions() Options {
	return Options{WalkLength: 3, Damping: 0.5, Solver: lsape.HungarianSolver{}}
}

func (o Options) withDefaults() Options {
	if o.WalkLength == 0 {
		o.WalkLength = 3
	}
	if o.Damping == 0 {
		o.Damping = 0.5
	}
	if o.Solver == nil {
		o.Solver = lsape.HungarianSolver{}
	}
	return o
}

func (o Options) validate() error {
	if o.WalkLength < 1 || o.Damping <= 0 || o.Damping > 1 {
		return ErrInvalidOptions
	}
	return nil
}

/*
BuildCost

Description:

	Builds the (n+1)x(m+1) LSAPE cost matrix for the random-walk seed:
	substitution cost is cf.NodeSub plus a damped L1 distance between the two
	nodes' walk-count profiles (the number of walks of length 1..WalkLength
	starting at each node); deletion/insertion columns/rows carry only
	cf.NodeDel/cf.NodeIns, since a deleted or inserted node has no
	counterpart profile to compare against.
*/
func BuildCost(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, opts Options) (*mat.Dense, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n, m := g1.Size(), g2.Size()

	var wc1, wc2 [][]float64
	if n > 0 {
		wc1 = walkCounts(adjacency(g1), opts.WalkLength)
	}
	if m > 0 {
		wc2 = walkCounts(adjacency(g2), opts.WalkLength)
	}

	C := mat.NewDense(n+1, m+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v := cf.NodeSub(g1.NodeAttr(i), g2.NodeAttr(j)) + walkDistance(wc1[i], wc2[j], opts.Damping)
			if err := checkFinite(v); err != nil {
				return nil, err
			}
			C.Set(i, j, v)
		}
	}
	for i := 0; i < n; i++ {
		v := cf.NodeDel(g1.NodeAttr(i))
		if err := checkFinite(v); err != nil {
			return nil, err
		}
		C.Set(i, m, v)
	}
	for j := 0; j < m; j++ {
		v := cf.NodeIns(g2.NodeAttr(j))
		if err := checkFinite(v); err != nil {
			return nil, err
		}
		C.Set(n, j, v)
	}
	C.Set(n, m, 0)
	return C, nil
}

// adjacency returns g's n×n adjacency matrix, direction-sensitive when g is
// directed (walks then only follow outgoing edges).
func adjacency(g gedgraph.Graph) *mat.Dense {
	n := g.Size()
	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for _, e := range g.IncidentEdges(i) {
			if e.From == i {
				A.Set(i, e.To, 1)
			}
		}
	}
	return A
}

// walkCounts returns, for every node i, the number of walks of length
// 1..walkLen starting at i, computed via repeated matrix multiplication of
// the adjacency matrix (walkCounts[i][l-1] = row sum of A^l at row i).
func walkCounts(A *mat.Dense, walkLen int) [][]float64 {
	n, _ := A.Dims()
	counts := make([][]float64, n)
	for i := range counts {
		counts[i] = make([]float64, walkLen)
	}
	Al := mat.DenseCopyOf(A)
	for l := 1; l <= walkLen; l++ {
		if l > 1 {
			next := mat.NewDense(n, n, nil)
			next.Mul(Al, A)
			Al = next
		}
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += Al.At(i, j)
			}
			counts[i][l-1] = sum
		}
	}
	return counts
}

func walkDistance(a, b []float64, damping float64) float64 {
	sum, weight := 0.0, 1.0
	for l := range a {
		sum += weight * math.Abs(a[l]-b[l])
		weight *= damping
	}
	return sum
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return lsape.ErrNonFiniteCost
	}
	return nil
}
