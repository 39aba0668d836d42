// Package lookup maps network-element identifiers to matrix row positions
// and keeps those mappings consistent through every renumbering step of a
// compile.
//
// The tables are an explicit context object scoped to one compile run. They
// are deliberately not cached on any shared structure: result-mapping code
// receives the Tables produced alongside the case pair it is mapping.
package lookup
