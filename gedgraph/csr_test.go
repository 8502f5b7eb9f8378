package gedgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksentia/gedcore/gedgraph"
)

func TestCSRBasic(t *testing.T) {
	b := gedgraph.NewCSRBuilder(3, false)
	b.SetNode(0, "a")
	b.SetNode(1, "b")
	b.SetNode(2, "c")
	b.AddEdge(0, 1, 1.5)
	b.AddEdge(1, 2, 2.5)
	g := b.Build()

	require.Equal(t, 3, g.Size())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.False(t, g.HasEdge(0, 2))

	attr, ok := g.EdgeAt(1, 2)
	require.True(t, ok)
	require.Equal(t, 2.5, attr)

	edges := g.IncidentEdges(1)
	require.Len(t, edges, 2)
}

func TestCSRDirectedIncidence(t *testing.T) {
	b := gedgraph.NewCSRBuilder(3, true)
	b.AddEdge(0, 1, "e1")
	b.AddEdge(2, 1, "e2")
	g := b.Build()

	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))

	edges := g.IncidentEdges(1)
	require.Len(t, edges, 2, "node 1 has one outgoing-to-none and two incoming")
}
