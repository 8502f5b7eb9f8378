package gedgraph

import "sort"

/*
CSR

Description:

	CSR stores a sparse graph as compressed row storage: rowStart[i]..
	rowStart[i+1] indexes into cols/attrs for the edges incident to (or, for
	a directed graph, outgoing from) node i. For a directed graph Build also
	compresses a reverse index of incoming edges, which IncidentEdges reads;
	HasEdge/EdgeAt look only at the forward rows.

Use cases:

	Large, sparse graphs where an n×n Dense matrix would waste memory.

Time complexity:

	HasEdge/EdgeAt: O(log deg) via binary search within a row (columns are
	                kept sorted per row by AddEdge's builder contract).
	IncidentEdges:  O(deg)

Memory:

	O(n + e)
*/

// CSR is a compressed-sparse-row Graph. Build it with NewCSRBuilder,
// AddEdge repeatedly, then Build — CSR itself is immutable once built.
type CSR struct {
	nodes     []any
	rowStart  []int
	cols      []int
	attrs     []any
	directed  bool
	// inRowStart/inCols/inAttrs index incoming edges for a directed graph;
	// nil for undirected graphs, where incidence is symmetric by
	// construction.
	inRowStart []int
	inCols     []int
	inAttrs    []any
}

// CSRBuilder accumulates edges before compressing them into a CSR.
type CSRBuilder struct {
	n        int
	directed bool
	nodes    []any
	fwd      [][]colAttr
	rev      [][]colAttr // only populated when directed
}

type colAttr struct {
	col  int
	attr any
}

// NewCSRBuilder starts a builder for an n-node graph.
func NewCSRBuilder(n int, directed bool) *CSRBuilder {
	return &CSRBuilder{
		n:        n,
		directed: directed,
		nodes:    make([]any, n),
		fwd:      make([][]colAttr, n),
	}
}

// SetNode assigns the attribute of node i.
func (b *CSRBuilder) SetNode(i int, attr any) { b.nodes[i] = attr }

// AddEdge inserts an edge (i,j) with the given attribute. Undirected edges
// are recorded on both incidence rows; i==j is rejected silently.
func (b *CSRBuilder) AddEdge(i, j int, attr any) {
	if i == j {
		return
	}
	b.fwd[i] = append(b.fwd[i], colAttr{col: j, attr: attr})
	if b.directed {
		if b.rev == nil {
			b.rev = make([][]colAttr, b.n)
		}
		b.rev[j] = append(b.rev[j], colAttr{col: i, attr: attr})
	} else {
		b.fwd[j] = append(b.fwd[j], colAttr{col: i, attr: attr})
	}
}

// Build compresses the accumulated edges into an immutable CSR.
func (b *CSRBuilder) Build() *CSR {
	c := &CSR{nodes: b.nodes, directed: b.directed}
	c.rowStart, c.cols, c.attrs = compress(b.n, b.fwd)
	if b.directed {
		c.inRowStart, c.inCols, c.inAttrs = compress(b.n, b.rev)
	}
	return c
}

func compress(n int, rows [][]colAttr) (rowStart, cols []int, attrs []any) {
	rowStart = make([]int, n+1)
	for i := 0; i < n; i++ {
		sort.Slice(rows[i], func(a, b int) bool { return rows[i][a].col < rows[i][b].col })
		rowStart[i+1] = rowStart[i] + len(rows[i])
	}
	cols = make([]int, rowStart[n])
	attrs = make([]any, rowStart[n])
	for i := 0; i < n; i++ {
		for k, ca := range rows[i] {
			cols[rowStart[i]+k] = ca.col
			attrs[rowStart[i]+k] = ca.attr
		}
	}
	return
}

func (c *CSR) Size() int { return len(c.nodes) }

func (c *CSR) NodeAttr(i int) any { return c.nodes[i] }

func (c *CSR) rowFind(i, j int) (int, bool) {
	lo, hi := c.rowStart[i], c.rowStart[i+1]
	idx := sort.Search(hi-lo, func(k int) bool { return c.cols[lo+k] >= j }) + lo
	if idx < hi && c.cols[idx] == j {
		return idx, true
	}
	return 0, false
}

func (c *CSR) HasEdge(i, j int) bool {
	if i == j {
		return false
	}
	if !c.directed {
		_, ok := c.rowFind(i, j)
		return ok
	}
	if _, ok := c.rowFind(i, j); ok {
		return true
	}
	return false
}

func (c *CSR) EdgeAt(i, j int) (any, bool) {
	if i == j {
		return nil, false
	}
	if idx, ok := c.rowFind(i, j); ok {
		return c.attrs[idx], true
	}
	return nil, false
}

func (c *CSR) IncidentEdges(i int) []EdgeRef {
	lo, hi := c.rowStart[i], c.rowStart[i+1]
	out := make([]EdgeRef, 0, (hi-lo)+len(c.inCols))
	for k := lo; k < hi; k++ {
		out = append(out, EdgeRef{From: i, To: c.cols[k], Attr: c.attrs[k]})
	}
	if c.directed {
		lo, hi = c.inRowStart[i], c.inRowStart[i+1]
		for k := lo; k < hi; k++ {
			out = append(out, EdgeRef{From: c.inCols[k], To: i, Attr: c.inAttrs[k]})
		}
	}
	return out
}

func (c *CSR) Directed() bool { return c.directed }
