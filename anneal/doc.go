// Package anneal implements the multi-vehicle annealing driver: initial
// proximity-based allocation of required edges, then a fixed number of
// iterations each reordering vehicles, building a tour per vehicle via
// package pwrp, accepting or rejecting the result, optionally recycling
// sub-cycles between tours, and cooling a simulated-annealing
// temperature that gates acceptance of non-improving recycle results.
package anneal
