// Package gedgraph defines the attributed-graph data model consumed by the
// rest of gedcore: an ordered sequence of nodes, each carrying an opaque
// attribute, plus a set of directed or undirected edges each carrying an
// opaque attribute of their own.
//
// Two implementations are provided:
//
//	Dense — an n×n adjacency matrix of edge attributes; O(1) HasEdge/EdgeAt,
//	        O(n) per-node incident-edge scan. Good for the small/medium graphs
//	        typical of GED workloads (tens to low hundreds of nodes).
//	CSR   — row-offset + column-index slices with an edge-attribute side
//	        table; O(log deg) HasEdge via a per-row binary search, O(deg) incident
//	        scan, O(n+e) memory. Good for sparse graphs.
//
// Both satisfy the Graph interface, so every downstream package (lsape,
// bipartitescc, ipfp, ...) is written against the interface only and never
// assumes a representation.
//
// Node and edge attributes are opaque (type any): gedcore does not interpret
// them itself. All cost semantics live behind the CostFunction contract
// (see types.go), which the caller supplies.
package gedgraph
