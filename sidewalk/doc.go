// Package sidewalk builds the sidewalk-clearing specialisation: each
// road segment contributes up to three edges (a road edge tagged
// two-way or one-way, plus an optional left and right sidewalk edge),
// and only sidewalk edges with a positive snow depth are required. It
// wires a language-neutral input through idmap and pwrp/anneal and
// formats the result back into plain output records.
package sidewalk
