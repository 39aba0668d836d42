package network

// Bus is a node at which voltage is defined.
type Bus struct {
	ID        int
	Name      string
	VnKV      float64 // nominal voltage level, kV
	MaxVmPU   float64
	MinVmPU   float64
	Zone      int
	InService bool
}

// Line is an AC line between two buses, parameterised per kilometre.
type Line struct {
	ID        int
	Name      string
	FromBus   int
	ToBus     int
	LengthKm  float64
	ROhmPerKm float64
	XOhmPerKm float64
	CNfPerKm  float64
	// Zero-sequence parameters, used only for unbalanced / short-circuit
	// analysis.
	R0OhmPerKm float64
	X0OhmPerKm float64
	C0NfPerKm  float64
	MaxIKA     float64
	Parallel   float64 // number of parallel systems, >= 1
	InService  bool
}

// Trafo is a two-winding transformer.
type Trafo struct {
	ID      int
	Name    string
	HVBus   int
	LVBus   int
	SnMVA   float64 // rated apparent power
	VnHVKV  float64 // rated voltage, high-voltage winding
	VnLVKV  float64 // rated voltage, low-voltage winding
	VkPct   float64 // short-circuit voltage, percent
	VkrPct  float64 // real part of the short-circuit voltage, percent
	Vk0Pct  float64 // zero-sequence short-circuit voltage, percent
	Vkr0Pct float64 // zero-sequence short-circuit voltage, real part, percent

	// Zero-sequence magnetizing branch: admittance as a ratio of the leakage
	// impedance, and its R/X ratio.
	Mag0Pct float64
	Mag0RX  float64

	// Si0HVPartial is the fraction of the zero-sequence leakage impedance
	// assigned to the high-voltage side in the T-equivalent.
	Si0HVPartial float64

	// VectorGroup is the winding-connection topology, e.g. "Dyn" or "YNyn".
	// The phase shift is carried separately in ShiftDegree, never as a
	// numeric suffix on the group string.
	VectorGroup string
	ShiftDegree float64

	TapSide    string // "hv" or "lv"
	TapNeutral int
	TapPos     int
	TapStepPct float64
	Parallel   float64
	InService  bool
}

// Trafo3W is a three-winding transformer. It participates in the balanced
// builders only; zero-sequence analysis rejects it.
type Trafo3W struct {
	ID        int
	Name      string
	HVBus     int
	MVBus     int
	LVBus     int
	InService bool
}

// ExtGrid is a network feeder: the slack injection of its island. The
// short-circuit fields are optional in the model and mandatory the moment a
// short-circuit or unbalanced compile touches them.
type ExtGrid struct {
	ID       int
	Name     string
	Bus      int
	VmPU     float64
	VaDegree float64

	SScMaxMVA *float64 // short-circuit apparent power, maximum case
	SScMinMVA *float64
	RXMax     *float64 // short-circuit R/X ratio, maximum case
	RXMin     *float64

	// Zero-sequence impedance ratios relative to the positive sequence.
	X0XMax  float64
	R0X0Max float64
	X0XMin  float64
	R0X0Min float64

	InService bool
}

// Gen is a voltage-controlled generator.
type Gen struct {
	ID        int
	Name      string
	Bus       int
	PMW       float64
	VmPU      float64
	SnMVA     float64
	MaxQMVar  float64
	MinQMVar  float64
	MaxPMW    float64
	MinPMW    float64
	Scaling   float64
	InService bool
}

// Sgen is a static generator injecting fixed P/Q, or a controllable
// injection when Controllable is set under OPF.
type Sgen struct {
	ID           int
	Name         string
	Bus          int
	PMW          float64
	QMVar        float64
	SnMVA        float64
	Scaling      float64
	Controllable bool
	InService    bool
}

// Load consumes fixed P/Q, or is dispatched as a controllable injection
// under OPF when Controllable is set.
type Load struct {
	ID           int
	Name         string
	Bus          int
	PMW          float64
	QMVar        float64
	Scaling      float64
	Controllable bool
	InService    bool
}

// Storage behaves like a load with signed power.
type Storage struct {
	ID           int
	Name         string
	Bus          int
	PMW          float64
	QMVar        float64
	Scaling      float64
	Controllable bool
	InService    bool
}

// Shunt is a fixed admittance to ground, rated at nominal voltage.
type Shunt struct {
	ID        int
	Name      string
	Bus       int
	PMW       float64
	QMVar     float64
	Step      int
	InService bool
}

// Switch element type tags.
const (
	SwitchBus   = "b" // bus-bus coupler
	SwitchLine  = "l" // bus-line switch
	SwitchTrafo = "t" // bus-trafo switch
)

// Switch connects a bus to another bus or to a branch element. Open
// element switches detach the branch end onto an auxiliary bus; closed
// bus-bus switches fuse their buses into one matrix row.
type Switch struct {
	ID          int
	Bus         int
	Element     int    // bus id or branch element id, per ElementType
	ElementType string // SwitchBus, SwitchLine or SwitchTrafo
	Closed      bool
}
