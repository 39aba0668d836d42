package network

// Net is one electrical network: per-element tables plus the options bundle
// for the next compile. Identifiers are stable across compiles; rows are
// value data.
type Net struct {
	Name    string
	BaseMVA float64 // system apparent-power base
	FHz     float64 // system frequency

	Buses    []Bus
	Lines    []Line
	Trafos   []Trafo
	Trafos3W []Trafo3W
	ExtGrids []ExtGrid
	Gens     []Gen
	Sgens    []Sgen
	Loads    []Load
	Storages []Storage
	Shunts   []Shunt
	Switches []Switch

	Options Options
}

// New returns an empty network with default options.
func New(name string, baseMVA float64) *Net {
	return &Net{
		Name:    name,
		BaseMVA: baseMVA,
		FHz:     50,
		Options: DefaultOptions(),
	}
}

// MaxBusID returns the largest bus identifier in the network, or -1 when
// there are no buses.
func (n *Net) MaxBusID() int {
	max := -1
	for _, b := range n.Buses {
		if b.ID > max {
			max = b.ID
		}
	}
	return max
}

// BusByID returns the bus with the given identifier.
func (n *Net) BusByID(id int) (Bus, bool) {
	for _, b := range n.Buses {
		if b.ID == id {
			return b, true
		}
	}
	return Bus{}, false
}
