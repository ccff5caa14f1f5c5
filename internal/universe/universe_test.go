package universe

import "testing"

func TestSectorOf(t *testing.T) {
	if got := SectorOf("TCS"); got != "IT" {
		t.Errorf("Expected TCS in IT, got %q", got)
	}
	if got := SectorOf("NOSUCH"); got != SectorUnknown {
		t.Errorf("Expected unknown ticker to map to %q, got %q", SectorUnknown, got)
	}
}

func TestSectorsReturnsCopy(t *testing.T) {
	m := Sectors()
	m["TCS"] = "Mutated"
	if SectorOf("TCS") != "IT" {
		t.Error("Mutating the returned map must not change the table")
	}
}

func TestScanSymbolsAreMapped(t *testing.T) {
	// Every default scan instrument should resolve to a known sector.
	for _, inst := range ScanSymbols {
		bare := inst[len("NSE:") : len(inst)-len("-EQ")]
		if SectorOf(bare) == SectorUnknown {
			t.Errorf("Scan symbol %s has no sector mapping", bare)
		}
	}
}

func TestSearchRanking(t *testing.T) {
	symbols := []string{"TATASTEEL", "TATAMOTORS", "TCS", "SBIN", "TATAPOWER"}

	got := Search("TATA", symbols, 10)
	if len(got) != 3 {
		t.Fatalf("Expected 3 matches, got %v", got)
	}
	for _, s := range got {
		if s == "TCS" || s == "SBIN" {
			t.Errorf("Unexpected match %q", s)
		}
	}

	// Exact match ranks first even when prefix matches exist.
	got = Search("TCS", []string{"TCSX", "TCS", "ATCS"}, 10)
	if len(got) != 3 || got[0] != "TCS" {
		t.Errorf("Expected exact match first, got %v", got)
	}
	if got[1] != "TCSX" || got[2] != "ATCS" {
		t.Errorf("Expected prefix before substring, got %v", got)
	}
}

func TestSearchCaseAndCap(t *testing.T) {
	symbols := []string{"TATASTEEL", "TATAMOTORS", "TATAPOWER"}

	got := Search("tata", symbols, 2)
	if len(got) != 2 {
		t.Errorf("Expected the cap to apply, got %v", got)
	}

	if got := Search("", symbols, 10); got != nil {
		t.Errorf("Expected no results for an empty term, got %v", got)
	}
}
