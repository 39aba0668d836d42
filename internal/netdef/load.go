package netdef

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/powergridgo/internal/ctxlog"
	"github.com/vk/powergridgo/internal/network"
)

// Load parses one HCL network definition file into the element-table model.
func Load(ctx context.Context, path string) (*network.Net, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse network file %s: %w", path, diags)
	}

	var parsed hclNetFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode network file %s: %w", path, diags)
	}
	return translate(ctx, path, &parsed)
}

// LoadBytes parses an in-memory HCL network definition. The filename only
// labels diagnostics.
func LoadBytes(ctx context.Context, filename string, src []byte) (*network.Net, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse network source %s: %w", filename, diags)
	}

	var parsed hclNetFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode network source %s: %w", filename, diags)
	}
	return translate(ctx, filename, &parsed)
}

func translate(ctx context.Context, source string, parsed *hclNetFile) (*network.Net, error) {
	logger := ctxlog.FromContext(ctx)

	if parsed.Network == nil {
		return nil, fmt.Errorf("%s: a network block is required", source)
	}

	net := network.New(parsed.Network.Name, parsed.Network.BaseMVA)
	if parsed.Network.FHz != nil {
		net.FHz = *parsed.Network.FHz
	}

	for _, b := range parsed.Buses {
		net.Buses = append(net.Buses, network.Bus{
			ID:        b.ID,
			Name:      strOr(b.Name, ""),
			VnKV:      b.VnKV,
			MaxVmPU:   numOr(b.MaxVmPU, 1.1),
			MinVmPU:   numOr(b.MinVmPU, 0.9),
			Zone:      intOr(b.Zone, 0),
			InService: boolOr(b.InService, true),
		})
	}

	for _, l := range parsed.Lines {
		net.Lines = append(net.Lines, network.Line{
			ID:         l.ID,
			Name:       strOr(l.Name, ""),
			FromBus:    l.FromBus,
			ToBus:      l.ToBus,
			LengthKm:   l.LengthKm,
			ROhmPerKm:  l.ROhmPerKm,
			XOhmPerKm:  l.XOhmPerKm,
			CNfPerKm:   numOr(l.CNfPerKm, 0),
			R0OhmPerKm: numOr(l.R0OhmPerKm, 0),
			X0OhmPerKm: numOr(l.X0OhmPerKm, 0),
			C0NfPerKm:  numOr(l.C0NfPerKm, 0),
			MaxIKA:     numOr(l.MaxIKA, 0),
			Parallel:   numOr(l.Parallel, 1),
			InService:  boolOr(l.InService, true),
		})
	}

	for _, t := range parsed.Trafos {
		tr := network.Trafo{
			ID:           t.ID,
			Name:         strOr(t.Name, ""),
			HVBus:        t.HVBus,
			LVBus:        t.LVBus,
			SnMVA:        t.SnMVA,
			VnHVKV:       t.VnHVKV,
			VnLVKV:       t.VnLVKV,
			VkPct:        t.VkPct,
			VkrPct:       t.VkrPct,
			Vk0Pct:       numOr(t.Vk0Pct, t.VkPct),
			Vkr0Pct:      numOr(t.Vkr0Pct, t.VkrPct),
			Mag0Pct:      numOr(t.Mag0Pct, 10),
			Mag0RX:       numOr(t.Mag0RX, 0),
			Si0HVPartial: numOr(t.Si0HVPartial, 0.5),
			VectorGroup:  strOr(t.VectorGroup, "Dyn"),
			ShiftDegree:  numOr(t.ShiftDegree, 0),
			TapSide:      strOr(t.TapSide, "hv"),
			TapNeutral:   intOr(t.TapNeutral, 0),
			TapPos:       intOr(t.TapPos, 0),
			TapStepPct:   numOr(t.TapStepPct, 0),
			Parallel:     numOr(t.Parallel, 1),
			InService:    boolOr(t.InService, true),
		}
		net.Trafos = append(net.Trafos, tr)
	}

	for _, eg := range parsed.ExtGrids {
		net.ExtGrids = append(net.ExtGrids, network.ExtGrid{
			ID:        eg.ID,
			Name:      strOr(eg.Name, ""),
			Bus:       eg.Bus,
			VmPU:      numOr(eg.VmPU, 1),
			VaDegree:  numOr(eg.VaDegree, 0),
			SScMaxMVA: eg.SScMaxMVA,
			SScMinMVA: eg.SScMinMVA,
			RXMax:     eg.RXMax,
			RXMin:     eg.RXMin,
			X0XMax:    numOr(eg.X0XMax, 1),
			R0X0Max:   numOr(eg.R0X0Max, 0.1),
			X0XMin:    numOr(eg.X0XMin, 1),
			R0X0Min:   numOr(eg.R0X0Min, 0.1),
			InService: boolOr(eg.InService, true),
		})
	}

	for _, g := range parsed.Gens {
		net.Gens = append(net.Gens, network.Gen{
			ID:        g.ID,
			Name:      strOr(g.Name, ""),
			Bus:       g.Bus,
			PMW:       g.PMW,
			VmPU:      numOr(g.VmPU, 1),
			SnMVA:     numOr(g.SnMVA, 0),
			MaxQMVar:  numOr(g.MaxQMVar, 0),
			MinQMVar:  numOr(g.MinQMVar, 0),
			MaxPMW:    numOr(g.MaxPMW, 0),
			MinPMW:    numOr(g.MinPMW, 0),
			Scaling:   numOr(g.Scaling, 1),
			InService: boolOr(g.InService, true),
		})
	}

	for _, s := range parsed.Sgens {
		net.Sgens = append(net.Sgens, network.Sgen{
			ID:           s.ID,
			Name:         strOr(s.Name, ""),
			Bus:          s.Bus,
			PMW:          s.PMW,
			QMVar:        numOr(s.QMVar, 0),
			SnMVA:        numOr(s.SnMVA, 0),
			Scaling:      numOr(s.Scaling, 1),
			Controllable: boolOr(s.Controllable, false),
			InService:    boolOr(s.InService, true),
		})
	}

	for _, l := range parsed.Loads {
		net.Loads = append(net.Loads, network.Load{
			ID:           l.ID,
			Name:         strOr(l.Name, ""),
			Bus:          l.Bus,
			PMW:          l.PMW,
			QMVar:        numOr(l.QMVar, 0),
			Scaling:      numOr(l.Scaling, 1),
			Controllable: boolOr(l.Controllable, false),
			InService:    boolOr(l.InService, true),
		})
	}

	for _, s := range parsed.Storages {
		net.Storages = append(net.Storages, network.Storage{
			ID:           s.ID,
			Name:         strOr(s.Name, ""),
			Bus:          s.Bus,
			PMW:          s.PMW,
			QMVar:        numOr(s.QMVar, 0),
			Scaling:      numOr(s.Scaling, 1),
			Controllable: boolOr(s.Controllable, false),
			InService:    boolOr(s.InService, true),
		})
	}

	for _, sh := range parsed.Shunts {
		net.Shunts = append(net.Shunts, network.Shunt{
			ID:        sh.ID,
			Name:      strOr(sh.Name, ""),
			Bus:       sh.Bus,
			PMW:       numOr(sh.PMW, 0),
			QMVar:     sh.QMVar,
			Step:      intOr(sh.Step, 1),
			InService: boolOr(sh.InService, true),
		})
	}

	for _, sw := range parsed.Switches {
		if sw.ElementType != network.SwitchBus &&
			sw.ElementType != network.SwitchLine &&
			sw.ElementType != network.SwitchTrafo {
			return nil, fmt.Errorf("%s: switch %d has unknown element type %q", source, sw.ID, sw.ElementType)
		}
		net.Switches = append(net.Switches, network.Switch{
			ID:          sw.ID,
			Bus:         sw.Bus,
			Element:     sw.Element,
			ElementType: sw.ElementType,
			Closed:      boolOr(sw.Closed, true),
		})
	}

	logger.Debug("Network definition loaded.",
		"network", net.Name, "buses", len(net.Buses),
		"lines", len(net.Lines), "trafos", len(net.Trafos))
	return net, nil
}

func numOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
