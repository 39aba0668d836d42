// Package network is the element-table model of an electrical network: one
// table per element type, stable integer identifiers, per-element in-service
// flags. It is the input side of the compiler; the flat matrix output lives
// in package mcase.
package network
