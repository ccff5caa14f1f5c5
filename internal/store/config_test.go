package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "data_source: FYERS\n"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Exchange != "NSE" {
		t.Errorf("Expected default exchange NSE, got %s", cfg.Exchange)
	}
	if cfg.PollSeconds != 300 {
		t.Errorf("Expected default poll interval 300, got %d", cfg.PollSeconds)
	}
	if cfg.Scanner.MinVolRatio != 2.0 {
		t.Errorf("Expected default min vol ratio 2.0, got %f", cfg.Scanner.MinVolRatio)
	}
	if cfg.Scanner.MinOIChangePct != 10.0 {
		t.Errorf("Expected default OI threshold 10.0, got %f", cfg.Scanner.MinOIChangePct)
	}
	if cfg.Scanner.VolWindow != 20 || cfg.Scanner.WeekWindow != 288 {
		t.Errorf("Expected default windows 20/288, got %d/%d", cfg.Scanner.VolWindow, cfg.Scanner.WeekWindow)
	}
	if cfg.Scanner.FallbackVolAvg != 100000 {
		t.Errorf("Expected default fallback baseline 100000, got %f", cfg.Scanner.FallbackVolAvg)
	}
	if cfg.Chain.PCRBull != 1.2 || cfg.Chain.PCRBear != 0.8 {
		t.Errorf("Expected default PCR thresholds 1.2/0.8, got %f/%f", cfg.Chain.PCRBull, cfg.Chain.PCRBear)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
data_source: KITE
exchange: NSE
scanner:
  min_vol_ratio: 3.5
  max_concurrent: 8
universe:
  static: [RELIANCE, TCS]
filters:
  sectors: [IT]
  min_vol_ratio: 2.5
`))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DataSource != "KITE" {
		t.Errorf("Expected KITE, got %s", cfg.DataSource)
	}
	if cfg.Scanner.MinVolRatio != 3.5 {
		t.Errorf("Expected 3.5, got %f", cfg.Scanner.MinVolRatio)
	}
	if len(cfg.Universe.Static) != 2 {
		t.Errorf("Expected 2 static symbols, got %d", len(cfg.Universe.Static))
	}
	if len(cfg.Filters.Sectors) != 1 || cfg.Filters.MinVolRatio != 2.5 {
		t.Errorf("Filters not loaded: %+v", cfg.Filters)
	}
}

func TestLoadConfigRejectsBadDataSource(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "data_source: UPSTOX\n")); err == nil {
		t.Fatal("Expected an unknown data source to fail validation")
	}
}

func TestLoadConfigRejectsBadWindows(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `
data_source: FYERS
scanner:
  vol_window: 300
  week_window: 288
`)); err == nil {
		t.Fatal("Expected vol_window > week_window to fail validation")
	}
}

func TestLoadConfigRejectsNegativeThreshold(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `
data_source: FYERS
scanner:
  min_vol_ratio: -1
`)); err == nil {
		t.Fatal("Expected a negative threshold to fail validation")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected a missing file to error")
	}
}
