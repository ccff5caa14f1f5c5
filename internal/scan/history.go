package scan

import "breakout-scanner/internal/types"

// Windows parameterizes the history aggregation.
type Windows struct {
	VolWindow      int     // candles averaged for the volume baseline
	WeekWindow     int     // candles spanning one trading week
	FallbackVolAvg float64 // baseline used when history is too short
}

// DefaultWindows matches one trading week of 5-minute bars.
func DefaultWindows() Windows {
	return Windows{VolWindow: 20, WeekWindow: 288, FallbackVolAvg: 100000}
}

// AggregateHistory derives the volume baseline and trailing weekly band
// from a candle series (oldest first). A series shorter than the volume
// window cannot support a meaningful baseline; rather than erroring out, the
// aggregate falls back to conservative defaults (fixed volume baseline,
// ±5% of the previous close) that suppress false breakout signals.
func AggregateHistory(candles []types.Candle, prevClose float64, w Windows) types.HistoryAggregate {
	if len(candles) < w.VolWindow || w.VolWindow <= 0 {
		return types.HistoryAggregate{
			Vol20Avg:     w.FallbackVolAvg,
			PrevWeekHigh: prevClose * 1.05,
			PrevWeekLow:  prevClose * 0.95,
			Fallback:     true,
		}
	}

	sum := 0.0
	for _, c := range candles[len(candles)-w.VolWindow:] {
		sum += c.Vol
	}
	volAvg := sum / float64(w.VolWindow)

	// Weekly band over the last WeekWindow candles, or the whole series
	// when it is shorter than a week.
	week := candles
	if len(week) > w.WeekWindow {
		week = week[len(week)-w.WeekWindow:]
	}
	high := week[0].High
	low := week[0].Low
	for _, c := range week[1:] {
		if c.High > high {
			high = c.High
		}
		if c.Low < low {
			low = c.Low
		}
	}

	return types.HistoryAggregate{
		Vol20Avg:     volAvg,
		PrevWeekHigh: high,
		PrevWeekLow:  low,
	}
}
