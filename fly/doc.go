// Package fly builds the aerial-survey specialisation: every road
// segment becomes a single undirected, required edge. It wires a
// language-neutral input (nodes, segments, vehicle locations) through
// idmap and pwrp/anneal, and formats the result back into plain
// output records.
package fly
