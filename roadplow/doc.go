// Package roadplow builds the road-clearing specialisation: edges
// honour each segment's directed flag, and only segments with a
// positive snow depth (explicit or defaulted) are required. It wires a
// language-neutral input through idmap and pwrp/anneal and formats the
// result back into plain output records.
package roadplow
