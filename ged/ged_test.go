package ged_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksentia/gedcore/ged"
	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/mapping"
)

type unitCost struct{}

func (unitCost) NodeSub(a1, a2 any) float64 {
	if a1 == a2 {
		return 0
	}
	return 1
}
func (unitCost) NodeDel(a1 any) float64 { return 1 }
func (unitCost) NodeIns(a2 any) float64 { return 1 }
func (unitCost) EdgeSub(e1, e2 gedgraph.EdgeRef) float64 {
	if e1.Attr == e2.Attr {
		return 0
	}
	return 1
}
func (unitCost) EdgeDel(e1 gedgraph.EdgeRef) float64 { return 1 }
func (unitCost) EdgeIns(e2 gedgraph.EdgeRef) float64 { return 1 }

func triangle() *gedgraph.Dense {
	g := gedgraph.NewDense(3, false)
	for i := 0; i < 3; i++ {
		g.SetNode(i, "n")
	}
	g.AddEdge(0, 1, "e")
	g.AddEdge(1, 2, "e")
	g.AddEdge(0, 2, "e")
	return g
}

func TestGedIsomorphicTrianglesIsZero(t *testing.T) {
	g1, g2 := triangle(), triangle()
	cost, m, err := ged.Ged(context.Background(), g1, g2, unitCost{}, ged.WithK(6))
	require.NoError(t, err)
	require.InDelta(t, 0.0, cost, 1e-9)
	require.NoError(t, m.Validate())
}

func TestGedNeverWorsensBipartiteBaseline(t *testing.T) {
	g1 := triangle()
	g2 := gedgraph.NewDense(3, false)
	for i := 0; i < 3; i++ {
		g2.SetNode(i, "n")
	}
	g2.AddEdge(0, 1, "e")
	g2.AddEdge(1, 2, "e")

	baseCost, _, err := ged.BipartiteGed(g1, g2, unitCost{})
	require.NoError(t, err)

	refinedCost, _, err := ged.Ged(context.Background(), g1, g2, unitCost{}, ged.WithK(3))
	require.NoError(t, err)
	require.LessOrEqual(t, refinedCost, baseCost+1e-9)
}

func TestGedSymmetricUpToSwappingFwdRev(t *testing.T) {
	g1 := triangle()
	g2 := gedgraph.NewDense(3, false)
	for i := 0; i < 3; i++ {
		g2.SetNode(i, "n")
	}
	g2.AddEdge(0, 1, "e")
	g2.AddEdge(1, 2, "e")

	cost12, m12, err := ged.Ged(context.Background(), g1, g2, unitCost{}, ged.WithK(6))
	require.NoError(t, err)
	cost21, m21, err := ged.Ged(context.Background(), g2, g1, unitCost{}, ged.WithK(6))
	require.NoError(t, err)

	// The cost callback here is symmetric, so the two searches solve
	// mirror-image assignment problems and must reach the same cost even
	// though tie-breaking among equal-cost optima may pick different
	// mappings (the triangle is symmetric under every relabeling and the
	// path under reversal).
	require.InDelta(t, cost12, cost21, 1e-9)
	require.NoError(t, m12.Validate())
	require.NoError(t, m21.Validate())
}

func TestGedRejectsNonPositiveBudget(t *testing.T) {
	g1, g2 := triangle(), triangle()
	_, _, err := ged.Ged(context.Background(), g1, g2, unitCost{}, ged.WithK(0))
	require.ErrorIs(t, err, ged.ErrInvalidBudget)
}

func TestGedRejectsNilGraph(t *testing.T) {
	g2 := triangle()
	_, _, err := ged.Ged(context.Background(), nil, g2, unitCost{})
	require.ErrorIs(t, err, ged.ErrNilGraph)
}

func TestGedRejectsDirectednessMismatch(t *testing.T) {
	g1 := gedgraph.NewDense(1, false)
	g2 := gedgraph.NewDense(1, true)
	_, _, err := ged.Ged(context.Background(), g1, g2, unitCost{})
	require.ErrorIs(t, err, gedgraph.ErrDirectednessMismatch)
}

func TestGedEmptyPairIsZero(t *testing.T) {
	g1 := gedgraph.NewDense(0, false)
	g2 := gedgraph.NewDense(0, false)
	cost, m, err := ged.Ged(context.Background(), g1, g2, unitCost{})
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
	require.Empty(t, m.Fwd)
}

func TestRefineFromValidatesSeed(t *testing.T) {
	g1, g2 := triangle(), triangle()
	bad := mapping.Mapping{Fwd: []int{0, 1, 1}, Rev: []int{0, 1, 2}}
	_, _, err := ged.RefineFrom(context.Background(), g1, g2, unitCost{}, bad)
	require.Error(t, err)
}

func TestRefineFromIdentitySeedStaysZero(t *testing.T) {
	g1, g2 := triangle(), triangle()
	seed := mapping.Mapping{Fwd: []int{0, 1, 2}, Rev: []int{0, 1, 2}}
	cost, _, err := ged.RefineFrom(context.Background(), g1, g2, unitCost{}, seed)
	require.NoError(t, err)
	require.InDelta(t, 0.0, cost, 1e-9)
}
