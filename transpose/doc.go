// Package transpose implements GW18, the Gustavson–Walker (2018) recursive
// in-place algorithm for transposing a rectangular matrix stored contiguously
// in row-major order.
//
// Given a buffer V of length rows*cols holding an rows×cols matrix, Transpose
// rewrites V in place into the cols×rows matrix V[j*rows+i] = old[i*cols+j],
// without allocating a second full-size buffer. Arbitrary rectangles are
// reduced to square transpositions by splitting off an integer number of
// n×n squares (n = min(rows, cols)) plus a remainder strip, and the squares
// are merged back into (or split out of) the rectangle with a pair of
// mutually-inverse permutations, shuffle and unshuffle.
//
// The package is a leaf numeric kernel: it returns errors instead of
// logging, takes no global configuration, and keeps no state between calls.
// Two collaborator primitives it does not implement itself — square
// transposition and a copy-based transpose for small matrices — live in
// internal/strategy.
package transpose
