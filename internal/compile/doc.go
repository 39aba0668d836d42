// Package compile turns a network model into the external/internal case
// pair a numeric solver consumes. Compile is the full pass: element
// assembly, optional zero-sequence synthesis, connectivity handling, and the
// ext->int renumbering that produces the dense, filtered internal case.
// Update is the fast path for operating-point-only changes, reusing the
// masks and numbering of the previous compile.
package compile
