package pnl

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"breakout-scanner/internal/types"
)

// HoldingLine is one raw holdings row as delivered by the broker. Numeric
// fields stay json.Number so a malformed value can be detected and the line
// skipped without aborting the rest of the listing.
type HoldingLine struct {
	Symbol    string      `json:"symbol"`
	Quantity  json.Number `json:"quantity"`
	CostPrice json.Number `json:"costPrice"`
	LTP       json.Number `json:"ltp"`
}

// PositionLine is one raw net-position row as delivered by the broker.
type PositionLine struct {
	Symbol     string      `json:"symbol"`
	Realized   json.Number `json:"realized_profit"`
	Unrealized json.Number `json:"unrealized_profit"`
}

// num parses a raw numeric field. An absent field ("" after unmarshal)
// counts as zero; anything non-numeric is an error and the caller skips
// the whole line.
func num(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}

// Summarize sums holdings P&L ((ltp - cost) * qty per line) and positions
// P&L (realized + unrealized per line) into one summary. Lines with
// malformed numbers are dropped; they never zero out the running total.
func Summarize(holdings []HoldingLine, positions []PositionLine) types.PnLSummary {
	holdingsPnL := decimal.Zero
	for _, h := range holdings {
		qty, err := num(h.Quantity)
		if err != nil {
			continue
		}
		cost, err := num(h.CostPrice)
		if err != nil {
			continue
		}
		ltp, err := num(h.LTP)
		if err != nil {
			continue
		}
		holdingsPnL = holdingsPnL.Add(ltp.Sub(cost).Mul(qty))
	}

	positionsPnL := decimal.Zero
	for _, p := range positions {
		realized, err := num(p.Realized)
		if err != nil {
			continue
		}
		unrealized, err := num(p.Unrealized)
		if err != nil {
			continue
		}
		positionsPnL = positionsPnL.Add(realized).Add(unrealized)
	}

	return types.PnLSummary{
		HoldingsPnL:  holdingsPnL.InexactFloat64(),
		PositionsPnL: positionsPnL.InexactFloat64(),
		TotalPnL:     holdingsPnL.Add(positionsPnL).InexactFloat64(),
	}
}
