// Package mapping defines the node-correspondence type shared by every
// gedcore solver: two parallel arrays over an augmented alphabet that
// record, for each node of G1, its image in G2 (or deletion), and
// symmetrically for G2.
package mapping
