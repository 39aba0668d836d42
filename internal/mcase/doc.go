// Package mcase holds the flat MATPOWER-style case structures the numeric
// solver consumes: a bus table and a generator table as real dense matrices,
// a branch table as a complex dense matrix, plus the internal cache slots the
// solver fills in (admittance matrices, in-service masks).
//
// Two cases exist per compile. The external case keeps every element row,
// including out-of-service ones, under the original bus numbering so results
// can be mapped back onto the network. The internal case is the solver-ready
// derivation: only in-service elements, dense zero-based bus numbering,
// generators sorted by host bus.
package mcase
