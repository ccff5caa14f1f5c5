package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataSource   string `yaml:"data_source"`   // FYERS or KITE
	Exchange     string `yaml:"exchange"`      // quote prefix, e.g. NSE
	PollSeconds  int    `yaml:"poll_seconds"`  // fallback interval when no schedule is set
	ScanSchedule string `yaml:"scan_schedule"` // cron spec in IST, e.g. "*/5 9-15 * * 1-5"

	Universe struct {
		Static []string `yaml:"static"` // bare symbols; empty means the built-in scan list
	} `yaml:"universe"`

	Scanner struct {
		MinVolRatio     float64 `yaml:"min_vol_ratio"`     // breakout volume threshold
		MinOIChangePct  float64 `yaml:"min_oi_change_pct"` // breakout OI threshold (strict >)
		StrikeWindowPct float64 `yaml:"strike_window_pct"` // strikes within this % of LTP confirm
		HistoryDays     int     `yaml:"history_days"`
		VolWindow       int     `yaml:"vol_window"`
		WeekWindow      int     `yaml:"week_window"`
		FallbackVolAvg  float64 `yaml:"fallback_vol_avg"`
		MaxConcurrent   int     `yaml:"max_concurrent"` // in-flight history fetches
		UseOptionChain  bool    `yaml:"use_option_chain"`
	} `yaml:"scanner"`

	// Display filters applied after classification. MinVolRatio here is an
	// independent knob from the scanner threshold above, on purpose.
	Filters struct {
		Sectors     []string `yaml:"sectors"`
		MinVolRatio float64  `yaml:"min_vol_ratio"`
	} `yaml:"filters"`

	Chain struct {
		Underlyings []string `yaml:"underlyings"`
		StrikeCount int      `yaml:"strike_count"`
		ExpiryCount int      `yaml:"expiry_count"`
		PCRBull     float64  `yaml:"pcr_bull"`
		PCRBear     float64  `yaml:"pcr_bear"`
	} `yaml:"chain"`
}

func (c *Config) Validate() error {
	if c.DataSource != "FYERS" && c.DataSource != "KITE" {
		return fmt.Errorf("invalid data_source '%s': must be 'FYERS' or 'KITE'", c.DataSource)
	}
	if c.Scanner.MinVolRatio <= 0 {
		return fmt.Errorf("scanner.min_vol_ratio must be positive, got %.2f", c.Scanner.MinVolRatio)
	}
	if c.Scanner.MinOIChangePct <= 0 {
		return fmt.Errorf("scanner.min_oi_change_pct must be positive, got %.2f", c.Scanner.MinOIChangePct)
	}
	if c.Scanner.VolWindow <= 0 || c.Scanner.WeekWindow < c.Scanner.VolWindow {
		return errors.New("scanner windows must satisfy 0 < vol_window <= week_window")
	}
	if c.Scanner.MaxConcurrent <= 0 {
		return fmt.Errorf("scanner.max_concurrent must be positive, got %d", c.Scanner.MaxConcurrent)
	}
	if c.Chain.StrikeCount <= 0 {
		return fmt.Errorf("chain.strike_count must be positive, got %d", c.Chain.StrikeCount)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.DataSource == "" {
		c.DataSource = "FYERS"
	}
	if c.Exchange == "" {
		c.Exchange = "NSE"
	}
	if c.PollSeconds == 0 {
		c.PollSeconds = 300
	}
	if c.Scanner.MinVolRatio == 0 {
		c.Scanner.MinVolRatio = 2.0
	}
	if c.Scanner.MinOIChangePct == 0 {
		c.Scanner.MinOIChangePct = 10.0
	}
	if c.Scanner.StrikeWindowPct == 0 {
		c.Scanner.StrikeWindowPct = 2.0
	}
	if c.Scanner.HistoryDays == 0 {
		c.Scanner.HistoryDays = 30
	}
	if c.Scanner.VolWindow == 0 {
		c.Scanner.VolWindow = 20
	}
	if c.Scanner.WeekWindow == 0 {
		c.Scanner.WeekWindow = 288
	}
	if c.Scanner.FallbackVolAvg == 0 {
		c.Scanner.FallbackVolAvg = 100000
	}
	if c.Scanner.MaxConcurrent == 0 {
		c.Scanner.MaxConcurrent = 4
	}
	if c.Chain.StrikeCount == 0 {
		c.Chain.StrikeCount = 30
	}
	if c.Chain.ExpiryCount == 0 {
		c.Chain.ExpiryCount = 4
	}
	if c.Chain.PCRBull == 0 {
		c.Chain.PCRBull = 1.2
	}
	if c.Chain.PCRBear == 0 {
		c.Chain.PCRBear = 0.8
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
