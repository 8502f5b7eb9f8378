// Package lsape builds LSAPE cost matrices from a graph pair and a
// gedgraph.CostFunction, and solves the resulting linear (sum) assignment
// problem — with or without the edition (ε row/column) extension.
//
// The solver itself treats the black-box LSAP/LSAPE primitive as an
// internal default implementation rather than a truly external one: gedcore
// ships a reference Hungarian solver (hungarian.go) so the module is usable
// standalone, but bipartite, ipfp and randomwalk are written against the
// Solver interface, so a faster or third-party primal-dual solver can be
// substituted without touching them. kbest calls SolveSquare on the lifted
// matrix directly.
package lsape
