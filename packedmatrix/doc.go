// SPDX-License-Identifier: MIT
//
// Packed-offset derivation (see packed.go for the formula): row i of the
// strict upper triangle has N-i entries (columns i+1..N); the cumulative
// offset of row i is sum_{r=1..i-1}(N-r) = (i-1)(2N-i)/2, and j-i-1 selects
// within that row. advance() walks the same traversal one step at a time
// so Fill can be expressed as a single index-paired generation of length M.
package packedmatrix
