// Package mwrpp solves the multi-vehicle windy rural postman problem
// for municipal snow clearing and aerial survey routing: given a road
// or sidewalk network and a fleet of vehicles, it produces one closed
// tour per vehicle that together traverse every required edge at least
// once.
//
// The module is organized as:
//
//	graph/      — mixed directed/undirected multigraph, Dijkstra, Tarjan SCCs
//	idmap/      — external-id <-> lightweight-id adapter over graph
//	pwrp/       — the positioned-WRPP tour-building heuristic
//	anneal/     — the simulated-annealing multi-vehicle driver
//	fly/        — aerial-survey specialisation (every segment required, undirected)
//	roadplow/   — road-plow specialisation (directed, snow-depth-gated)
//	sidewalk/   — sidewalk-plow specialisation (road + two sidewalk edges per segment)
//
// There is no process entry point, no serialisation format, and no
// real-time or dynamic re-planning support: each specialisation package
// exposes a single Build function taking plain Go input records and
// returning plain Go output records.
package mwrpp
