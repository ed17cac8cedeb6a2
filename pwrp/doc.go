// Package pwrp implements the Positioned Windy Rural Postman heuristic:
// given a graph, a start node, and a set of required edges, it extends
// a closed walk from the start until every required edge has been
// traversed, by repeatedly injecting short detours ("cycle injection")
// or bridging to a distant, as-yet-unvisited cluster of required edges
// ("distant-isle bridging").
package pwrp
