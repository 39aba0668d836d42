package zeroseq

import (
	"errors"
	"fmt"
)

// ErrThreeWinding rejects three-winding transformers, which have no
// zero-sequence model in this compiler.
var ErrThreeWinding = errors.New("three-winding transformers are not supported for unbalanced calculations")

// VectorGroupError reports a transformer winding-connection topology the
// synthesizer cannot handle. PhaseShiftSuffix marks the special case of a
// numeric suffix embedded in the group string: the convention requires the
// phase shift in the transformer's shift_degree field instead.
type VectorGroupError struct {
	Group            string
	PhaseShiftSuffix bool
}

// Error implements the error interface.
func (e *VectorGroupError) Error() string {
	if e.PhaseShiftSuffix {
		return fmt.Sprintf("unknown transformer vector group %q - specify the vector group without a phase shift number; the phase shift belongs in shift_degree", e.Group)
	}
	return fmt.Sprintf("transformer vector group %q is unknown / not implemented", e.Group)
}
