// Package core defines a small, thread-safe graph of string-identified
// vertices and integer-weighted edges.
//
// A Graph is configured once, at construction:
//
//   - WithDirected(true): edges are one-way. Default: undirected, every edge
//     is mirrored in the adjacency of both endpoints.
//   - WithWeighted():     non-zero edge weights are accepted. Default: every
//     edge weight must be 0 and callers count hops.
//   - WithLoops():        self-loops are accepted.
//
// Parallel edges are never allowed: (from, to) identifies at most one edge.
// Vertices may carry their own integer weight (SetVertexWeight), used by
// callers for per-node payloads such as capacities or rates.
//
// Determinism:
//
//   - Vertices() and NeighborIDs() are sorted lexicographically.
//   - Edges() is in insertion order; edge IDs are "e1", "e2", ...
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same ordered pair.
//
// Concurrency: all methods are safe for concurrent use.
package core
