package gedgraph

/*
Dense

Description:

	Dense represents a graph as a flat node slice plus an n×n adjacency
	matrix of edge attributes. A nil interface{} cell means "no edge"; a
	non-nil cell (including an explicit zero value wrapped in an interface)
	means an edge is present with that attribute.

Use cases:

	Small to medium graphs (the common case for GED — comparing molecules,
	small program graphs, etc.) where O(n²) memory is cheap and O(1)
	edge lookups matter more than sparsity.

Time complexity:

	HasEdge/EdgeAt: O(1)
	IncidentEdges:  O(n)

Memory:

	O(n²)
*/

// Dense is an adjacency-matrix backed Graph.
type Dense struct {
	nodes    []any
	adj      [][]any // adj[i][j] attribute, nil if no edge
	directed bool
}

// NewDense builds an empty Dense graph over n nodes, all with a nil
// attribute; use SetNode to assign attributes and AddEdge to add edges.
func NewDense(n int, directed bool) *Dense {
	adj := make([][]any, n)
	for i := range adj {
		adj[i] = make([]any, n)
	}
	return &Dense{
		nodes:    make([]any, n),
		adj:      adj,
		directed: directed,
	}
}

// SetNode assigns the attribute of node i.
func (d *Dense) SetNode(i int, attr any) {
	d.nodes[i] = attr
}

// AddEdge inserts an edge (i,j) with the given attribute. For an undirected
// graph this also sets (j,i) to the same attribute; i==j is rejected
// silently (gedcore graphs carry no loops).
func (d *Dense) AddEdge(i, j int, attr any) {
	if i == j {
		return
	}
	d.adj[i][j] = attr
	if !d.directed {
		d.adj[j][i] = attr
	}
}

func (d *Dense) Size() int { return len(d.nodes) }

func (d *Dense) NodeAttr(i int) any { return d.nodes[i] }

func (d *Dense) HasEdge(i, j int) bool {
	if i == j {
		return false
	}
	return d.adj[i][j] != nil
}

func (d *Dense) EdgeAt(i, j int) (any, bool) {
	if i == j {
		return nil, false
	}
	a := d.adj[i][j]
	return a, a != nil
}

func (d *Dense) IncidentEdges(i int) []EdgeRef {
	n := d.Size()
	out := make([]EdgeRef, 0, n)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		if a := d.adj[i][j]; a != nil {
			out = append(out, EdgeRef{From: i, To: j, Attr: a})
		}
		if d.directed {
			if a := d.adj[j][i]; a != nil {
				out = append(out, EdgeRef{From: j, To: i, Attr: a})
			}
		}
	}
	return out
}

func (d *Dense) Directed() bool { return d.directed }
