// Package graph implements the mixed directed/undirected graph that the
// rest of this module builds on: nodes carry a caller-supplied payload,
// edges carry direction, weight and an optional discriminator, and the
// package provides Dijkstra shortest paths and iterative Tarjan SCCs,
// both direction-aware and direction-blind.
//
// Nodes and edges are addressed by a lightweight NodeID rather than by
// the caller's own identifiers; github.com/vaskrai/mwrpp/idmap is the
// thin layer that maps between the two.
//
// Edge identity (equality and hashing) is the tuple (P1, P2,
// Discriminator, Side) — Weight and Directed never participate. Callers
// that key sets or maps on Edge rely on this.
package graph
