package scan

import "breakout-scanner/internal/types"

// Filter narrows scan rows for display. MinVolRatio here is deliberately a
// separate knob from the classifier threshold: the classifier decides what
// is a breakout, the filter decides what the caller wants to look at.
type Filter struct {
	Sectors     []string // allow-list; empty or containing "All" passes everything
	MinVolRatio float64
}

func (f Filter) allowsSector(sector string) bool {
	if len(f.Sectors) == 0 {
		return true
	}
	for _, s := range f.Sectors {
		if s == "All" || s == sector {
			return true
		}
	}
	return false
}

// Apply returns the rows passing the sector allow-list and the volume-ratio
// floor.
func (f Filter) Apply(rows []types.ScanRow) []types.ScanRow {
	out := make([]types.ScanRow, 0, len(rows))
	for _, r := range rows {
		if !f.allowsSector(r.Snapshot.Sector) {
			continue
		}
		if r.VolRatio < f.MinVolRatio {
			continue
		}
		out = append(out, r)
	}
	return out
}
