// Package zeroseq synthesizes the ground-return branch network used by
// unbalanced power-flow and short-circuit analysis: line zero-sequence
// impedances, external-grid grounding admittances, and the equivalent
// two-port impedances of two-winding transformers keyed by their
// winding-connection topology (vector group).
//
// Whether zero-sequence current can flow through a transformer at all, and
// where its grounding admittance lands, depends entirely on the vector
// group. Each supported group is a variant carrying its own synthesis rule;
// unknown groups are a configuration error, never a silent default.
package zeroseq
