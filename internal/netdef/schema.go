package netdef

// hclNetFile is the top-level decoding structure of one network definition
// file.
type hclNetFile struct {
	Network  *hclNetwork   `hcl:"network,block"`
	Buses    []*hclBus     `hcl:"bus,block"`
	Lines    []*hclLine    `hcl:"line,block"`
	Trafos   []*hclTrafo   `hcl:"transformer,block"`
	ExtGrids []*hclExtGrid `hcl:"ext_grid,block"`
	Gens     []*hclGen     `hcl:"gen,block"`
	Sgens    []*hclSgen    `hcl:"sgen,block"`
	Loads    []*hclLoad    `hcl:"load,block"`
	Storages []*hclStorage `hcl:"storage,block"`
	Shunts   []*hclShunt   `hcl:"shunt,block"`
	Switches []*hclSwitch  `hcl:"switch,block"`
}

type hclNetwork struct {
	Name    string   `hcl:"name,label"`
	BaseMVA float64  `hcl:"base_mva"`
	FHz     *float64 `hcl:"f_hz,optional"`
}

type hclBus struct {
	ID        int      `hcl:"id"`
	Name      *string  `hcl:"name,optional"`
	VnKV      float64  `hcl:"vn_kv"`
	MaxVmPU   *float64 `hcl:"max_vm_pu,optional"`
	MinVmPU   *float64 `hcl:"min_vm_pu,optional"`
	Zone      *int     `hcl:"zone,optional"`
	InService *bool    `hcl:"in_service,optional"`
}

type hclLine struct {
	ID         int      `hcl:"id"`
	Name       *string  `hcl:"name,optional"`
	FromBus    int      `hcl:"from_bus"`
	ToBus      int      `hcl:"to_bus"`
	LengthKm   float64  `hcl:"length_km"`
	ROhmPerKm  float64  `hcl:"r_ohm_per_km"`
	XOhmPerKm  float64  `hcl:"x_ohm_per_km"`
	CNfPerKm   *float64 `hcl:"c_nf_per_km,optional"`
	R0OhmPerKm *float64 `hcl:"r0_ohm_per_km,optional"`
	X0OhmPerKm *float64 `hcl:"x0_ohm_per_km,optional"`
	C0NfPerKm  *float64 `hcl:"c0_nf_per_km,optional"`
	MaxIKA     *float64 `hcl:"max_i_ka,optional"`
	Parallel   *float64 `hcl:"parallel,optional"`
	InService  *bool    `hcl:"in_service,optional"`
}

type hclTrafo struct {
	ID           int      `hcl:"id"`
	Name         *string  `hcl:"name,optional"`
	HVBus        int      `hcl:"hv_bus"`
	LVBus        int      `hcl:"lv_bus"`
	SnMVA        float64  `hcl:"sn_mva"`
	VnHVKV       float64  `hcl:"vn_hv_kv"`
	VnLVKV       float64  `hcl:"vn_lv_kv"`
	VkPct        float64  `hcl:"vk_percent"`
	VkrPct       float64  `hcl:"vkr_percent"`
	Vk0Pct       *float64 `hcl:"vk0_percent,optional"`
	Vkr0Pct      *float64 `hcl:"vkr0_percent,optional"`
	Mag0Pct      *float64 `hcl:"mag0_percent,optional"`
	Mag0RX       *float64 `hcl:"mag0_rx,optional"`
	Si0HVPartial *float64 `hcl:"si0_hv_partial,optional"`
	VectorGroup  *string  `hcl:"vector_group,optional"`
	ShiftDegree  *float64 `hcl:"shift_degree,optional"`
	TapSide      *string  `hcl:"tap_side,optional"`
	TapNeutral   *int     `hcl:"tap_neutral,optional"`
	TapPos       *int     `hcl:"tap_pos,optional"`
	TapStepPct   *float64 `hcl:"tap_step_percent,optional"`
	Parallel     *float64 `hcl:"parallel,optional"`
	InService    *bool    `hcl:"in_service,optional"`
}

type hclExtGrid struct {
	ID        int      `hcl:"id"`
	Name      *string  `hcl:"name,optional"`
	Bus       int      `hcl:"bus"`
	VmPU      *float64 `hcl:"vm_pu,optional"`
	VaDegree  *float64 `hcl:"va_degree,optional"`
	SScMaxMVA *float64 `hcl:"s_sc_max_mva,optional"`
	SScMinMVA *float64 `hcl:"s_sc_min_mva,optional"`
	RXMax     *float64 `hcl:"rx_max,optional"`
	RXMin     *float64 `hcl:"rx_min,optional"`
	X0XMax    *float64 `hcl:"x0x_max,optional"`
	R0X0Max   *float64 `hcl:"r0x0_max,optional"`
	X0XMin    *float64 `hcl:"x0x_min,optional"`
	R0X0Min   *float64 `hcl:"r0x0_min,optional"`
	InService *bool    `hcl:"in_service,optional"`
}

type hclGen struct {
	ID        int      `hcl:"id"`
	Name      *string  `hcl:"name,optional"`
	Bus       int      `hcl:"bus"`
	PMW       float64  `hcl:"p_mw"`
	VmPU      *float64 `hcl:"vm_pu,optional"`
	SnMVA     *float64 `hcl:"sn_mva,optional"`
	MaxQMVar  *float64 `hcl:"max_q_mvar,optional"`
	MinQMVar  *float64 `hcl:"min_q_mvar,optional"`
	MaxPMW    *float64 `hcl:"max_p_mw,optional"`
	MinPMW    *float64 `hcl:"min_p_mw,optional"`
	Scaling   *float64 `hcl:"scaling,optional"`
	InService *bool    `hcl:"in_service,optional"`
}

type hclSgen struct {
	ID           int      `hcl:"id"`
	Name         *string  `hcl:"name,optional"`
	Bus          int      `hcl:"bus"`
	PMW          float64  `hcl:"p_mw"`
	QMVar        *float64 `hcl:"q_mvar,optional"`
	SnMVA        *float64 `hcl:"sn_mva,optional"`
	Scaling      *float64 `hcl:"scaling,optional"`
	Controllable *bool    `hcl:"controllable,optional"`
	InService    *bool    `hcl:"in_service,optional"`
}

type hclLoad struct {
	ID           int      `hcl:"id"`
	Name         *string  `hcl:"name,optional"`
	Bus          int      `hcl:"bus"`
	PMW          float64  `hcl:"p_mw"`
	QMVar        *float64 `hcl:"q_mvar,optional"`
	Scaling      *float64 `hcl:"scaling,optional"`
	Controllable *bool    `hcl:"controllable,optional"`
	InService    *bool    `hcl:"in_service,optional"`
}

type hclStorage struct {
	ID           int      `hcl:"id"`
	Name         *string  `hcl:"name,optional"`
	Bus          int      `hcl:"bus"`
	PMW          float64  `hcl:"p_mw"`
	QMVar        *float64 `hcl:"q_mvar,optional"`
	Scaling      *float64 `hcl:"scaling,optional"`
	Controllable *bool    `hcl:"controllable,optional"`
	InService    *bool    `hcl:"in_service,optional"`
}

type hclShunt struct {
	ID        int      `hcl:"id"`
	Name      *string  `hcl:"name,optional"`
	Bus       int      `hcl:"bus"`
	PMW       *float64 `hcl:"p_mw,optional"`
	QMVar     float64  `hcl:"q_mvar"`
	Step      *int     `hcl:"step,optional"`
	InService *bool    `hcl:"in_service,optional"`
}

type hclSwitch struct {
	ID          int     `hcl:"id"`
	Bus         int     `hcl:"bus"`
	Element     int     `hcl:"element"`
	ElementType string  `hcl:"et"`
	Closed      *bool   `hcl:"closed,optional"`
	Name        *string `hcl:"name,optional"`
}
