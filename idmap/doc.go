// Package idmap is the Id Adapter: a thin layer translating between
// heavy external identifiers (arbitrary strings carried by callers) and
// the lightweight graph.NodeID a Graph actually indexes by. Node
// storage itself is delegated to the wrapped graph.Graph; idmap only
// owns the id translation table and the monotonic generator that feeds
// it.
package idmap
