package zeroseq

import "unicode"

// shuntSide selects the bus that receives a transformer's grounding
// admittance.
type shuntSide int

const (
	sideLV shuntSide = iota
	sideHV
)

// groupSpec is the synthesis variant of one vector group.
type groupSpec struct {
	// blocked groups have no zero-sequence ground path at all: the branch
	// row stays out of service and contributes nothing.
	blocked bool

	// tEquivalent marks YNyn: both windings grounded, full T-model converted
	// to an equivalent Pi on the branch row.
	tEquivalent bool

	// magInSeries: the magnetizing impedance sits in series with the leakage
	// impedance in the grounding path (Yyn, YNy). When false, only the
	// leakage term is exposed (Dyn, YNd).
	magInSeries bool

	side shuntSide
}

// vectorGroups enumerates every winding-connection topology the synthesizer
// implements.
var vectorGroups = map[string]groupSpec{
	"Yy": {blocked: true},
	"Yd": {blocked: true},
	"Dy": {blocked: true},
	"Dd": {blocked: true},

	"Dyn": {side: sideLV},
	"YNd": {side: sideHV},
	"Yyn": {side: sideLV, magInSeries: true},
	"YNy": {side: sideHV, magInSeries: true},

	"YNyn": {tEquivalent: true},
}

// lookupGroup resolves a vector-group string to its synthesis variant.
func lookupGroup(group string) (groupSpec, error) {
	if spec, ok := vectorGroups[group]; ok {
		return spec, nil
	}
	runes := []rune(group)
	if len(runes) > 0 && unicode.IsDigit(runes[len(runes)-1]) {
		return groupSpec{}, &VectorGroupError{Group: group, PhaseShiftSuffix: true}
	}
	return groupSpec{}, &VectorGroupError{Group: group}
}
