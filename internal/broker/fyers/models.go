package fyers

import (
	"breakout-scanner/internal/pnl"
	"breakout-scanner/internal/types"
)

// statusOK is the success marker in every Fyers envelope.
const statusOK = "ok"

type quotesEnvelope struct {
	S       string            `json:"s"`
	Message string            `json:"message,omitempty"`
	D       []types.QuoteTick `json:"d"`
}

// historyEnvelope carries candles as positional arrays:
// [timestamp, open, high, low, close, volume].
type historyEnvelope struct {
	S       string      `json:"s"`
	Message string      `json:"message,omitempty"`
	Candles [][]float64 `json:"candles"`
}

type chainEnvelope struct {
	S       string `json:"s"`
	Message string `json:"message,omitempty"`
	Data    struct {
		OptionsChain []types.OptionEntry `json:"optionsChain"`
	} `json:"data"`
}

type holdingsEnvelope struct {
	S        string            `json:"s"`
	Message  string            `json:"message,omitempty"`
	Holdings []pnl.HoldingLine `json:"holdings"`
}

type positionsEnvelope struct {
	S            string             `json:"s"`
	Message      string             `json:"message,omitempty"`
	NetPositions []pnl.PositionLine `json:"netPositions"`
}

type fundsEnvelope struct {
	S          string `json:"s"`
	Message    string `json:"message,omitempty"`
	FundLimits []struct {
		Title           string  `json:"title"`
		EquityAmount    float64 `json:"equityAmount"`
		CommodityAmount float64 `json:"commodityAmount"`
	} `json:"fund_limit"`
}

type tokenEnvelope struct {
	S           string `json:"s"`
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"access_token"`
}
