package scan

import (
	"sort"
	"strings"

	"breakout-scanner/internal/types"
)

// SectorPerformance turns batch quotes for the sector index instruments
// into per-sector change figures, sorted best to worst. Ticks that match no
// known index are ignored.
func SectorPerformance(ticks []types.QuoteTick, indices map[string]string) []types.SectorPerf {
	var out []types.SectorPerf
	for _, tick := range ticks {
		name := matchIndex(tick.Name, indices)
		if name == "" {
			continue
		}

		ltp, err := firstField(tick.Values, "lp", "ltp")
		if err != nil {
			continue
		}
		prev, err := firstField(tick.Values, "prev_close_price")
		if err != nil {
			continue
		}
		if prev == 0 {
			prev = ltp
		}

		chg := ltp - prev
		chgPct := 0.0
		if prev > 0 {
			chgPct = chg / prev * 100
		}

		out = append(out, types.SectorPerf{
			Sector:    name,
			Last:      ltp,
			Change:    chg,
			ChangePct: chgPct,
			Status:    sectorStatus(chgPct),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ChangePct > out[j].ChangePct })
	return out
}

func matchIndex(instrument string, indices map[string]string) string {
	for name, sym := range indices {
		if strings.Contains(instrument, sym) {
			return name
		}
	}
	return ""
}

func sectorStatus(chgPct float64) string {
	switch {
	case chgPct > 0.5:
		return types.StatusBullish
	case chgPct < -0.5:
		return types.StatusBearish
	default:
		return types.StatusNeutral
	}
}
