package mcase

// Column layout of the bus table. One row per bus, auxiliary buses included.
const (
	BusI    = iota // bus identifier (dense row index after ext->int conversion)
	BusType        // one of TypePQ, TypePV, TypeRef, TypeNone
	Pd             // real power demand, MW
	Qd             // reactive power demand, MVAr
	Gs             // shunt conductance, MW at V=1.0 p.u.
	Bs             // shunt susceptance, MVAr at V=1.0 p.u.
	BusArea
	Vm     // voltage magnitude, p.u.
	Va     // voltage angle, degrees
	BaseKV // base voltage, kV
	Zone
	VMax // maximum voltage magnitude, p.u.
	VMin // minimum voltage magnitude, p.u.

	BusCols
)

// Short-circuit analysis appends voltage-factor columns to the bus table.
const (
	CMax = BusCols + iota // voltage correction factor, maximum-current case
	CMin                  // voltage correction factor, minimum-current case

	BusColsSC
)

// Bus type tags.
const (
	TypePQ   = 1 // load bus
	TypePV   = 2 // voltage-controlled bus
	TypeRef  = 3 // slack / reference bus
	TypeNone = 4 // isolated, excluded from the internal case
)

// Column layout of the branch table. The table is complex valued: for
// zero-sequence cases the series parameters carry ground-return impedance and
// the susceptance cell may hold a full complex shunt admittance.
const (
	FBus     = iota // from-bus identifier
	TBus            // to-bus identifier
	BrR             // series resistance, p.u.
	BrX             // series reactance, p.u.
	BrB             // total line charging susceptance, p.u.
	RateA           // long-term MVA rating
	RateB           // short-term MVA rating
	RateC           // emergency MVA rating
	Tap             // off-nominal tap ratio
	Shift           // phase shift, degrees
	BrStatus        // 1 in service, 0 out of service
	AngMin          // minimum angle difference, degrees
	AngMax          // maximum angle difference, degrees

	BranchCols
)

// Column layout of the generator cost table. Rows parallel the generator
// table; the objective assembler fills the values.
const (
	CostModel = iota // cost model tag
	CostStartup
	CostShutdown
	CostNPoints // number of cost curve points or coefficients

	GenCostCols
)

// Column layout of the generator table. Ext grids, generators and
// controllable injections all land here.
const (
	GenBus    = iota // host bus identifier
	Pg               // real power output, MW
	Qg               // reactive power output, MVAr
	QMax             // maximum reactive output, MVAr
	QMin             // minimum reactive output, MVAr
	Vg               // voltage setpoint, p.u.
	MBase            // machine MVA base
	GenStatus        // >0 in service
	PMax             // maximum real output, MW
	PMin             // minimum real output, MW

	GenCols
)
