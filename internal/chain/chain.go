// Package chain normalizes raw option chain feeds into per-strike records
// and derives the open-interest sentiment metrics.
package chain

import (
	"sort"
	"strings"

	"breakout-scanner/internal/types"
)

// Normalize pairs raw chain entries by strike. Entries with a zero or
// negative strike are the underlying's own record injected into the feed
// and are discarded. Both feed shapes merge into the same record: nested
// entries contribute their call/put sub-objects, flat entries contribute
// the leg named by their CE/PE discriminator. A strike that ends up with
// neither leg is omitted.
//
// The output is ascending by strike and truncated to the lowest
// strikeCount strikes after sorting. That window is not centered on the
// at-the-money strike; see DESIGN.md before changing it.
func Normalize(entries []types.OptionEntry, strikeCount int) []types.OptionStrikeRecord {
	byStrike := make(map[float64]*types.OptionStrikeRecord)

	record := func(strike float64) *types.OptionStrikeRecord {
		if rec, ok := byStrike[strike]; ok {
			return rec
		}
		rec := &types.OptionStrikeRecord{Strike: strike}
		byStrike[strike] = rec
		return rec
	}

	for _, e := range entries {
		if e.StrikePrice <= 0 {
			continue
		}

		if e.Call != nil || e.Put != nil {
			rec := record(e.StrikePrice)
			if e.Call != nil {
				c := *e.Call
				rec.Call = &c
			}
			if e.Put != nil {
				p := *e.Put
				rec.Put = &p
			}
			continue
		}

		side := &types.OptionSide{
			LTP:    e.LTP,
			OI:     e.OI,
			PrevOI: e.PrevOI,
			Volume: e.Volume,
			IV:     e.IV,
		}
		switch strings.ToUpper(e.OptionType) {
		case "CE":
			record(e.StrikePrice).Call = side
		case "PE":
			record(e.StrikePrice).Put = side
		default:
			// Unknown entry type, skip.
		}
	}

	records := make([]types.OptionStrikeRecord, 0, len(byStrike))
	for _, rec := range byStrike {
		if rec.Call == nil && rec.Put == nil {
			continue
		}
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Strike < records[j].Strike })

	if strikeCount > 0 && len(records) > strikeCount {
		records = records[:strikeCount]
	}
	return records
}

// Summary aggregates open interest across a normalized chain.
type Summary struct {
	TotalCallOI float64 `json:"total_call_oi"`
	TotalPutOI  float64 `json:"total_put_oi"`
	PCR         float64 `json:"pcr"`
	Sentiment   string  `json:"sentiment"`
}

// SentimentThresholds are the PCR cut-offs for the sentiment label.
type SentimentThresholds struct {
	Bull float64 // PCR above this reads bullish
	Bear float64 // PCR below this reads bearish
}

func DefaultThresholds() SentimentThresholds {
	return SentimentThresholds{Bull: 1.2, Bear: 0.8}
}

// Summarize computes total call/put OI and the put-call ratio. Zero call OI
// defines PCR as 0 rather than dividing by zero.
func Summarize(records []types.OptionStrikeRecord, t SentimentThresholds) Summary {
	var callOI, putOI float64
	for _, rec := range records {
		if rec.Call != nil {
			callOI += rec.Call.OI
		}
		if rec.Put != nil {
			putOI += rec.Put.OI
		}
	}

	pcr := 0.0
	if callOI > 0 {
		pcr = putOI / callOI
	}

	sentiment := types.StatusNeutral
	switch {
	case pcr > t.Bull:
		sentiment = types.StatusBullish
	case pcr < t.Bear:
		sentiment = types.StatusBearish
	}

	return Summary{
		TotalCallOI: callOI,
		TotalPutOI:  putOI,
		PCR:         pcr,
		Sentiment:   sentiment,
	}
}
