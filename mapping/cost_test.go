package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

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

func TestCostIdentityMappingIsFree(t *testing.T) {
	g1 := gedgraph.NewDense(2, false)
	g2 := gedgraph.NewDense(2, false)
	g1.SetNode(0, "a")
	g1.SetNode(1, "b")
	g2.SetNode(0, "a")
	g2.SetNode(1, "b")
	g1.AddEdge(0, 1, "e")
	g2.AddEdge(0, 1, "e")

	m := mapping.Mapping{Fwd: []int{0, 1}, Rev: []int{0, 1}}
	cost, err := mapping.Cost(g1, g2, unitCost{}, m)
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
}

func TestCostAllDeletedAllInserted(t *testing.T) {
	g1 := gedgraph.NewDense(2, false)
	g2 := gedgraph.NewDense(1, false)
	g1.SetNode(0, "a")
	g1.SetNode(1, "b")
	g2.SetNode(0, "c")

	m := mapping.New(2, 1) // all epsilon
	cost, err := mapping.Cost(g1, g2, unitCost{}, m)
	require.NoError(t, err)
	require.Equal(t, 3.0, cost) // 2 node deletions + 1 node insertion
}

func TestCostEdgeDeletedWhenTargetMissingEdge(t *testing.T) {
	g1 := gedgraph.NewDense(2, false)
	g2 := gedgraph.NewDense(2, false)
	g1.SetNode(0, "a")
	g1.SetNode(1, "b")
	g2.SetNode(0, "a")
	g2.SetNode(1, "b")
	g1.AddEdge(0, 1, "e")

	m := mapping.Mapping{Fwd: []int{0, 1}, Rev: []int{0, 1}}
	cost, err := mapping.Cost(g1, g2, unitCost{}, m)
	require.NoError(t, err)
	require.Equal(t, 1.0, cost) // one edge deletion, no node cost
}

func TestCostDirectedCountsEachOrientationOnce(t *testing.T) {
	g1 := gedgraph.NewDense(2, true)
	g2 := gedgraph.NewDense(2, true)
	g1.SetNode(0, "a")
	g1.SetNode(1, "b")
	g2.SetNode(0, "a")
	g2.SetNode(1, "b")
	g1.AddEdge(0, 1, "e")
	g2.AddEdge(0, 1, "e")
	g2.AddEdge(1, 0, "e") // extra reverse edge in g2, must be an insertion

	m := mapping.Mapping{Fwd: []int{0, 1}, Rev: []int{0, 1}}
	cost, err := mapping.Cost(g1, g2, unitCost{}, m)
	require.NoError(t, err)
	require.Equal(t, 1.0, cost)
}
