package types

// Candle is one OHLCV bar, oldest-first when in a series.
type Candle struct {
	Ts                          int64
	Open, High, Low, Close, Vol float64
}

// Signal is the breakout classification for one symbol in one scan cycle.
type Signal string

const (
	SignalBull Signal = "BULL"
	SignalBear Signal = "BEAR"
	SignalNone Signal = "NONE"
)

// QuoteTick is one raw item of a batch quote response. Vendor field names
// are preserved in Values and resolved once at the normalization boundary.
type QuoteTick struct {
	Name   string         `json:"n"`
	Values map[string]any `json:"v"`
}

// QuoteSnapshot is the normalized per-symbol view of a quote tick.
type QuoteSnapshot struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	LastPrice float64 `json:"last_price"`
	PrevClose float64 `json:"prev_close"`
	Volume    float64 `json:"volume"`
	OICurrent float64 `json:"oi_current"`
	OIPrev    float64 `json:"oi_prev"`
}

// HistoryAggregate carries the derived history inputs for classification.
// Fallback is set when the candle series was too short to derive them.
type HistoryAggregate struct {
	Vol20Avg     float64 `json:"vol_20_avg"`
	PrevWeekHigh float64 `json:"prev_week_high"`
	PrevWeekLow  float64 `json:"prev_week_low"`
	Fallback     bool    `json:"fallback,omitempty"`
}

// OptionSide holds one leg (call or put) of a strike.
type OptionSide struct {
	LTP    float64 `json:"ltp"`
	OI     float64 `json:"oi"`
	PrevOI float64 `json:"prev_oi"`
	Volume float64 `json:"volume"`
	IV     float64 `json:"iv"`
}

// OptionEntry is one raw element of an option chain feed. The feed mixes two
// shapes: pre-paired entries carry Call/Put sub-objects, flat entries carry
// the leg fields directly plus an option-type discriminator ("CE"/"PE").
// The underlying instrument is injected into the feed with a zero strike.
type OptionEntry struct {
	StrikePrice float64     `json:"strike_price"`
	OptionType  string      `json:"option_type,omitempty"`
	LTP         float64     `json:"ltp,omitempty"`
	OI          float64     `json:"oi,omitempty"`
	PrevOI      float64     `json:"prev_oi,omitempty"`
	Volume      float64     `json:"volume,omitempty"`
	IV          float64     `json:"iv,omitempty"`
	Call        *OptionSide `json:"call,omitempty"`
	Put         *OptionSide `json:"put,omitempty"`
}

// OptionStrikeRecord pairs the call and put legs of one strike.
// A side missing from the feed stays nil.
type OptionStrikeRecord struct {
	Strike float64     `json:"strike"`
	Call   *OptionSide `json:"call,omitempty"`
	Put    *OptionSide `json:"put,omitempty"`
}

// PnLSummary sums realized and unrealized profit across the account.
type PnLSummary struct {
	HoldingsPnL  float64 `json:"holdings_pnl"`
	PositionsPnL float64 `json:"positions_pnl"`
	TotalPnL     float64 `json:"total_pnl"`
}

// ScanRow joins a snapshot with its history aggregate and classification.
type ScanRow struct {
	Snapshot QuoteSnapshot    `json:"snapshot"`
	History  HistoryAggregate `json:"history"`
	VolRatio float64          `json:"vol_ratio"`
	OIPct    float64          `json:"oi_pct"`
	Signal   Signal           `json:"signal"`
}

// ScanResult is the outcome of one scan cycle over the watched universe.
type ScanResult struct {
	Time    int64     `json:"time"`
	Rows    []ScanRow `json:"rows"`
	Skipped int       `json:"skipped,omitempty"`
}

// SectorPerf is the per-sector index performance for one cycle.
type SectorPerf struct {
	Sector    string  `json:"sector"`
	Last      float64 `json:"last"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	Status    string  `json:"status"`
}

const (
	StatusBullish = "BULLISH"
	StatusBearish = "BEARISH"
	StatusNeutral = "NEUTRAL"
)
