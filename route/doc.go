// Package route composes bounded visiting routes from ranked POI candidates
// and computes route statistics.
//
// Composition selects a top-scoring prefix, diversifies it so no single
// category dominates, and orders the result with a greedy nearest-neighbor
// heuristic. The ordering is a local heuristic producing an open path, not a
// shortest-path optimum.
package route
