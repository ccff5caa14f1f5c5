package chain

import (
	"testing"

	"breakout-scanner/internal/types"
)

func TestNormalizeMergesFlatLegs(t *testing.T) {
	entries := []types.OptionEntry{
		{StrikePrice: 2500, OptionType: "CE", OI: 100000, LTP: 55},
		{StrikePrice: 2500, OptionType: "PE", OI: 120000, LTP: 42},
	}

	records := Normalize(entries, 0)
	if len(records) != 1 {
		t.Fatalf("Expected 1 merged strike, got %d", len(records))
	}
	rec := records[0]
	if rec.Call == nil || rec.Call.OI != 100000 {
		t.Error("Call leg not merged from CE entry")
	}
	if rec.Put == nil || rec.Put.OI != 120000 {
		t.Error("Put leg not merged from PE entry")
	}
}

func TestNormalizeNestedEntries(t *testing.T) {
	entries := []types.OptionEntry{
		{
			StrikePrice: 2500,
			Call:        &types.OptionSide{OI: 90000},
			Put:         &types.OptionSide{OI: 110000},
		},
	}

	records := Normalize(entries, 0)
	if len(records) != 1 {
		t.Fatalf("Expected 1 strike, got %d", len(records))
	}
	if records[0].Call.OI != 90000 || records[0].Put.OI != 110000 {
		t.Error("Nested legs not carried over")
	}
}

func TestNormalizeDropsNonPositiveStrikes(t *testing.T) {
	entries := []types.OptionEntry{
		{StrikePrice: 0, OptionType: "CE", OI: 1}, // the underlying's own record
		{StrikePrice: -1, OptionType: "PE", OI: 1},
		{StrikePrice: 2500, OptionType: "CE", OI: 100},
	}

	records := Normalize(entries, 0)
	if len(records) != 1 || records[0].Strike != 2500 {
		t.Errorf("Expected only the 2500 strike to survive, got %v", records)
	}
}

func TestNormalizeDropsLeglessAndUnknownTypes(t *testing.T) {
	entries := []types.OptionEntry{
		{StrikePrice: 2500, OptionType: "XX", OI: 100}, // unknown discriminator
	}

	if records := Normalize(entries, 0); len(records) != 0 {
		t.Errorf("Expected a legless strike to be dropped, got %v", records)
	}
}

func TestNormalizeSortsAndTruncates(t *testing.T) {
	entries := []types.OptionEntry{
		{StrikePrice: 2700, OptionType: "CE", OI: 1},
		{StrikePrice: 2500, OptionType: "CE", OI: 1},
		{StrikePrice: 2600, OptionType: "CE", OI: 1},
	}

	records := Normalize(entries, 2)
	if len(records) != 2 {
		t.Fatalf("Expected truncation to 2 strikes, got %d", len(records))
	}
	// Lowest strikes win after the ascending sort.
	if records[0].Strike != 2500 || records[1].Strike != 2600 {
		t.Errorf("Expected [2500 2600], got [%f %f]", records[0].Strike, records[1].Strike)
	}
}

func TestNormalizeIsIdempotentPerStrike(t *testing.T) {
	// The same legs delivered twice still yield one record per strike.
	entries := []types.OptionEntry{
		{StrikePrice: 2500, OptionType: "CE", OI: 100},
		{StrikePrice: 2500, OptionType: "CE", OI: 100},
	}
	if records := Normalize(entries, 0); len(records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(records))
	}
}

func TestSummarizePCR(t *testing.T) {
	records := []types.OptionStrikeRecord{
		{Strike: 2500, Call: &types.OptionSide{OI: 100000}, Put: &types.OptionSide{OI: 60000}},
	}

	sum := Summarize(records, DefaultThresholds())
	if sum.PCR != 0.6 {
		t.Errorf("Expected PCR 0.6, got %f", sum.PCR)
	}
	if sum.Sentiment != types.StatusBearish {
		t.Errorf("Expected PCR 0.6 to read BEARISH, got %s", sum.Sentiment)
	}
}

func TestSummarizeBullishAndNeutral(t *testing.T) {
	records := []types.OptionStrikeRecord{
		{Strike: 2500, Call: &types.OptionSide{OI: 100000}, Put: &types.OptionSide{OI: 130000}},
	}
	if sum := Summarize(records, DefaultThresholds()); sum.Sentiment != types.StatusBullish {
		t.Errorf("Expected PCR 1.3 to read BULLISH, got %s", sum.Sentiment)
	}

	records[0].Put.OI = 100000
	if sum := Summarize(records, DefaultThresholds()); sum.Sentiment != types.StatusNeutral {
		t.Errorf("Expected PCR 1.0 to read NEUTRAL, got %s", sum.Sentiment)
	}
}

func TestSummarizeZeroCallOI(t *testing.T) {
	records := []types.OptionStrikeRecord{
		{Strike: 2500, Put: &types.OptionSide{OI: 100000}},
	}

	sum := Summarize(records, DefaultThresholds())
	if sum.PCR != 0 {
		t.Errorf("Expected PCR 0 with no call OI, got %f", sum.PCR)
	}
	if sum.Sentiment != types.StatusBearish {
		t.Errorf("Expected zero PCR to read BEARISH, got %s", sum.Sentiment)
	}
}
