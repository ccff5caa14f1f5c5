package scan

import (
	"math"

	"breakout-scanner/internal/types"
)

// Params are the classifier thresholds.
type Params struct {
	MinVolRatio     float64 // volume ratio condition, inclusive
	MinOIChangePct  float64 // OI change condition, strict
	StrikeWindowPct float64 // strikes within this % of LTP count as nearby
}

func DefaultParams() Params {
	return Params{MinVolRatio: 2.0, MinOIChangePct: 10.0, StrikeWindowPct: 2.0}
}

// PercentChange returns the percent change from old to new. A zero base is
// defined as zero change, never a division failure.
func PercentChange(old, new float64) float64 {
	if old == 0 {
		return 0
	}
	return (new - old) / math.Abs(old) * 100.0
}

// VolumeRatio relates current volume to its baseline; a non-positive
// baseline yields 0.
func VolumeRatio(current, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return current / baseline
}

// sideOIChange computes the OI percent change for one leg. A nil leg or a
// missing previous OI contributes zero change.
func sideOIChange(s *types.OptionSide) float64 {
	if s == nil {
		return 0
	}
	prev := s.PrevOI
	if prev == 0 {
		prev = s.OI
	}
	return PercentChange(prev, s.OI)
}

// nearbyStrikes selects strikes within windowPct of the last price.
func nearbyStrikes(ltp float64, chain []types.OptionStrikeRecord, windowPct float64) []types.OptionStrikeRecord {
	var out []types.OptionStrikeRecord
	for _, rec := range chain {
		if math.Abs(rec.Strike-ltp)/ltp <= windowPct/100.0 {
			out = append(out, rec)
		}
	}
	return out
}

// resistanceWeakening confirms a bullish breakout from option flow near the
// money: put addition (long buildup) or call unwinding (short covering).
// When the check cannot run on the supplied data it confirms rather than
// suppressing a detected breakout.
func resistanceWeakening(ltp float64, chain []types.OptionStrikeRecord, p Params) bool {
	if ltp <= 0 {
		return true
	}
	for _, rec := range nearbyStrikes(ltp, chain, p.StrikeWindowPct) {
		if sideOIChange(rec.Put) > p.MinOIChangePct || sideOIChange(rec.Call) < -p.MinOIChangePct {
			return true
		}
	}
	return false
}

// supportWeakening is the bearish mirror: call addition (short buildup) or
// put unwinding (long covering).
func supportWeakening(ltp float64, chain []types.OptionStrikeRecord, p Params) bool {
	if ltp <= 0 {
		return true
	}
	for _, rec := range nearbyStrikes(ltp, chain, p.StrikeWindowPct) {
		if sideOIChange(rec.Call) > p.MinOIChangePct || sideOIChange(rec.Put) < -p.MinOIChangePct {
			return true
		}
	}
	return false
}

// Classify decides whether a snapshot is a fresh bullish breakout, a fresh
// bearish breakdown, or neither.
//
// Bullish: price above the previous-week high, volume at or above
// MinVolRatio times the 20-period baseline, and |OI change| strictly above
// MinOIChangePct. Bearish mirrors with price below the previous-week low.
// When a chain is supplied the signal additionally needs nearby-strike
// confirmation (resistance/support weakening); without one the base signal
// stands on its own.
//
// Pure and stateless: identical inputs always classify identically.
func Classify(snap types.QuoteSnapshot, hist types.HistoryAggregate, chain []types.OptionStrikeRecord, p Params) types.Signal {
	volRatio := VolumeRatio(snap.Volume, hist.Vol20Avg)
	volOK := volRatio >= p.MinVolRatio

	oiPct := PercentChange(snap.OIPrev, snap.OICurrent)
	oiOK := math.Abs(oiPct) > p.MinOIChangePct

	switch {
	case snap.LastPrice > hist.PrevWeekHigh && volOK && oiOK:
		if chain == nil || resistanceWeakening(snap.LastPrice, chain, p) {
			return types.SignalBull
		}
	case snap.LastPrice < hist.PrevWeekLow && volOK && oiOK:
		if chain == nil || supportWeakening(snap.LastPrice, chain, p) {
			return types.SignalBear
		}
	}
	return types.SignalNone
}
