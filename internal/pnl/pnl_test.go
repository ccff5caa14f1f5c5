package pnl

import "testing"

func TestSummarize(t *testing.T) {
	holdings := []HoldingLine{
		{Symbol: "RELIANCE", Quantity: "10", CostPrice: "2400", LTP: "2410"}, // +100
		{Symbol: "TCS", Quantity: "5", CostPrice: "3500", LTP: "3500"},       // 0
	}
	positions := []PositionLine{
		{Symbol: "INFY", Realized: "50", Unrealized: "-20"}, // +30
	}

	sum := Summarize(holdings, positions)
	if sum.HoldingsPnL != 100 {
		t.Errorf("Expected holdings P&L 100, got %f", sum.HoldingsPnL)
	}
	if sum.PositionsPnL != 30 {
		t.Errorf("Expected positions P&L 30, got %f", sum.PositionsPnL)
	}
	if sum.TotalPnL != 130 {
		t.Errorf("Expected total P&L 130, got %f", sum.TotalPnL)
	}
}

func TestSummarizeSkipsMalformedLines(t *testing.T) {
	holdings := []HoldingLine{
		{Symbol: "GOOD", Quantity: "10", CostPrice: "100", LTP: "110"}, // +100
		{Symbol: "BAD", Quantity: "abc", CostPrice: "100", LTP: "110"},
	}
	positions := []PositionLine{
		{Symbol: "GOOD", Realized: "25", Unrealized: "0"},
		{Symbol: "BAD", Realized: "xx", Unrealized: "5"},
	}

	sum := Summarize(holdings, positions)
	if sum.HoldingsPnL != 100 {
		t.Errorf("Expected the malformed holding to be skipped, got %f", sum.HoldingsPnL)
	}
	if sum.PositionsPnL != 25 {
		t.Errorf("Expected the malformed position to be skipped, got %f", sum.PositionsPnL)
	}
}

func TestSummarizeEmptyFieldsReadAsZero(t *testing.T) {
	holdings := []HoldingLine{
		{Symbol: "PARTIAL", Quantity: "10", CostPrice: "", LTP: "50"}, // cost 0 -> +500
	}
	positions := []PositionLine{
		{Symbol: "PARTIAL", Realized: "", Unrealized: "10"},
	}

	sum := Summarize(holdings, positions)
	if sum.HoldingsPnL != 500 {
		t.Errorf("Expected absent cost to read as zero, got %f", sum.HoldingsPnL)
	}
	if sum.PositionsPnL != 10 {
		t.Errorf("Expected absent realized to read as zero, got %f", sum.PositionsPnL)
	}
}

func TestSummarizeNoData(t *testing.T) {
	sum := Summarize(nil, nil)
	if sum.TotalPnL != 0 || sum.HoldingsPnL != 0 || sum.PositionsPnL != 0 {
		t.Errorf("Expected zero summary with no data, got %+v", sum)
	}
}

func TestSummarizeExactDecimals(t *testing.T) {
	// 0.1 + 0.2 style sums stay exact under decimal arithmetic.
	positions := []PositionLine{
		{Symbol: "A", Realized: "0.1", Unrealized: "0.2"},
	}
	if sum := Summarize(nil, positions); sum.PositionsPnL != 0.3 {
		t.Errorf("Expected exactly 0.3, got %.17f", sum.PositionsPnL)
	}
}
