package network

// Mode selects the analysis the compiled case feeds.
type Mode string

const (
	ModePF    Mode = "pf"     // balanced power flow
	ModePF3Ph Mode = "pf_3ph" // unbalanced three-phase power flow
	ModeSC    Mode = "sc"     // short circuit
	ModeOPF   Mode = "opf"    // optimal power flow
)

// SCCase selects the short-circuit extreme under study.
type SCCase string

const (
	SCMax SCCase = "max"
	SCMin SCCase = "min"
)

// Recycle flags which compiled structures a repeated solve reuses unmodified.
// When YBus is set, the incremental updater leaves transformer-derived branch
// values untouched.
type Recycle struct {
	YBus bool
}

// Options is the per-compile options bundle.
type Options struct {
	Mode              Mode
	Sequence          int // mcase.PositiveSeq or mcase.ZeroSeq
	CheckConnectivity bool
	SCCase            SCCase
	Recycle           Recycle
}

// DefaultOptions returns a balanced power-flow configuration.
func DefaultOptions() Options {
	return Options{
		Mode:     ModePF,
		Sequence: 1,
		SCCase:   SCMax,
	}
}
