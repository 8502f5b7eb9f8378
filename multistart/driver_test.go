package multistart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/mapping"
	"github.com/oksentia/gedcore/multistart"
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

func path3() (*gedgraph.Dense, *gedgraph.Dense) {
	g1 := gedgraph.NewDense(3, false)
	g2 := gedgraph.NewDense(3, false)
	for i := 0; i < 3; i++ {
		g1.SetNode(i, "n")
		g2.SetNode(i, "n")
	}
	g1.AddEdge(0, 1, "e")
	g1.AddEdge(1, 2, "e")
	g2.AddEdge(0, 1, "e")
	g2.AddEdge(1, 2, "e")
	return g1, g2
}

func TestRunSequentialPicksBestAmongSeeds(t *testing.T) {
	g1, g2 := path3()
	good := mapping.Mapping{Fwd: []int{0, 1, 2}, Rev: []int{0, 1, 2}}
	bad := mapping.Mapping{Fwd: []int{2, 0, 1}, Rev: []int{1, 2, 0}}

	res, err := multistart.RunSequential(context.Background(), g1, g2, unitCost{}, []mapping.Mapping{bad, good}, multistart.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Seeds, 2)
	require.InDelta(t, 0.0, res.Best.Cost, 1e-9)
}

func TestRunParallelMatchesSequentialBestCost(t *testing.T) {
	g1, g2 := path3()
	seeds := []mapping.Mapping{
		{Fwd: []int{2, 0, 1}, Rev: []int{1, 2, 0}},
		{Fwd: []int{0, 1, 2}, Rev: []int{0, 1, 2}},
		{Fwd: []int{1, 2, 0}, Rev: []int{2, 0, 1}},
	}
	opts := multistart.DefaultOptions()
	opts.Parallelism = 4

	seqRes, err := multistart.RunSequential(context.Background(), g1, g2, unitCost{}, seeds, multistart.DefaultOptions())
	require.NoError(t, err)
	parRes, err := multistart.RunParallel(context.Background(), g1, g2, unitCost{}, seeds, opts)
	require.NoError(t, err)

	require.InDelta(t, seqRes.Best.Cost, parRes.Best.Cost, 1e-9)
}

func TestRunNoSeedsErrors(t *testing.T) {
	g1, g2 := path3()
	_, err := multistart.RunSequential(context.Background(), g1, g2, unitCost{}, nil, multistart.DefaultOptions())
	require.ErrorIs(t, err, multistart.ErrNoSeeds)
}

func TestRunAllSeedsFailedWhenContextAlreadyCancelled(t *testing.T) {
	g1, g2 := path3()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	seeds := []mapping.Mapping{
		{Fwd: []int{0, 1, 2}, Rev: []int{0, 1, 2}},
	}
	_, err := multistart.RunSequential(ctx, g1, g2, unitCost{}, seeds, multistart.DefaultOptions())
	require.ErrorIs(t, err, multistart.ErrAllSeedsFailed)
	require.ErrorIs(t, err, context.Canceled, "the last seed's numeric cause must be reachable via errors.Is")
}
