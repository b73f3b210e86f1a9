// Package strategy implements the two collaborator primitives the GW18
// transpose engine (github.com/katalvlaran/gw18transpose/transpose)
// consumes but deliberately does not own: a plain n×n in-place square
// transpose, and a small-matrix transpose that goes through one
// auxiliary buffer. Neither recurses and neither is parallel; they are
// the base cases the recursive engine bottoms out into.
package strategy
