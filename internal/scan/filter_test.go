package scan

import (
	"testing"

	"breakout-scanner/internal/types"
)

func filterRows() []types.ScanRow {
	return []types.ScanRow{
		{Snapshot: types.QuoteSnapshot{Symbol: "TCS", Sector: "IT"}, VolRatio: 3.0},
		{Snapshot: types.QuoteSnapshot{Symbol: "SBIN", Sector: "PSU Bank"}, VolRatio: 1.5},
		{Snapshot: types.QuoteSnapshot{Symbol: "ITC", Sector: "FMCG"}, VolRatio: 2.5},
	}
}

func TestFilterEmptyPassesEverything(t *testing.T) {
	out := Filter{}.Apply(filterRows())
	if len(out) != 3 {
		t.Errorf("Expected all rows to pass an empty filter, got %d", len(out))
	}
}

func TestFilterAllSentinel(t *testing.T) {
	out := Filter{Sectors: []string{"All"}}.Apply(filterRows())
	if len(out) != 3 {
		t.Errorf("Expected 'All' to pass every sector, got %d rows", len(out))
	}
}

func TestFilterSectorAllowList(t *testing.T) {
	out := Filter{Sectors: []string{"IT", "FMCG"}}.Apply(filterRows())
	if len(out) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(out))
	}
	for _, r := range out {
		if r.Snapshot.Sector != "IT" && r.Snapshot.Sector != "FMCG" {
			t.Errorf("Unexpected sector %q passed the filter", r.Snapshot.Sector)
		}
	}
}

func TestFilterVolRatioFloor(t *testing.T) {
	out := Filter{MinVolRatio: 2.0}.Apply(filterRows())
	if len(out) != 2 {
		t.Fatalf("Expected 2 rows at or above the floor, got %d", len(out))
	}
	for _, r := range out {
		if r.VolRatio < 2.0 {
			t.Errorf("Row with ratio %f passed a 2.0 floor", r.VolRatio)
		}
	}
}
