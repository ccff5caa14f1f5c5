package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"breakout-scanner/internal/chain"
	"breakout-scanner/internal/interfaces"
	"breakout-scanner/internal/logger"
	"breakout-scanner/internal/pnl"
	"breakout-scanner/internal/scan"
	"breakout-scanner/internal/scanlog"
	"breakout-scanner/internal/store"
	"breakout-scanner/internal/types"
	"breakout-scanner/internal/universe"
)

// cycleRunner executes one full scan cycle: classification, display filter,
// sector performance, chain sentiment and P&L, emitted as one JSON report
// line per cycle.
type cycleRunner struct {
	cfg         *store.Config
	md          interfaces.MarketData
	scanner     interfaces.Scanner
	instruments []string
}

// cycleReport is the per-cycle stdout payload.
type cycleReport struct {
	Time    string               `json:"time"`
	Rows    []types.ScanRow      `json:"rows"`
	Sectors []types.SectorPerf   `json:"sectors,omitempty"`
	Chains  map[string]chainView `json:"chains,omitempty"`
	PnL     *types.PnLSummary    `json:"pnl,omitempty"`
	Skipped int                  `json:"skipped,omitempty"`
}

type chainView struct {
	Expiry    string  `json:"expiry"`
	PCR       float64 `json:"pcr"`
	Sentiment string  `json:"sentiment"`
	Strikes   int     `json:"strikes"`
}

func (r *cycleRunner) run(ctx context.Context) {
	start := time.Now()

	result, err := r.scanner.Scan(ctx, r.instruments)
	if err != nil {
		// Quote batch failed; nothing to report this cycle.
		return
	}

	filter := scan.Filter{
		Sectors:     r.cfg.Filters.Sectors,
		MinVolRatio: r.cfg.Filters.MinVolRatio,
	}
	rows := filter.Apply(result.Rows)

	bulls, bears := 0, 0
	for _, row := range result.Rows {
		switch row.Signal {
		case types.SignalBull, types.SignalBear:
			if row.Signal == types.SignalBull {
				bulls++
			} else {
				bears++
			}
			logger.Signal(ctx, row.Snapshot.Symbol, string(row.Signal),
				row.VolRatio, row.OIPct, row.Snapshot.LastPrice,
				"sector", row.Snapshot.Sector)
			if err := scanlog.Append(scanlog.SignalEntry{
				Symbol:   row.Snapshot.Symbol,
				Sector:   row.Snapshot.Sector,
				Signal:   string(row.Signal),
				Price:    row.Snapshot.LastPrice,
				VolRatio: row.VolRatio,
				OIPct:    row.OIPct,
			}); err != nil {
				logger.Warn(ctx, "Signal log write failed", "error", err)
			}
		}
	}

	report := cycleReport{
		Time:    start.In(ist).Format("2006-01-02 15:04:05"),
		Rows:    rows,
		Sectors: r.sectorPerformance(ctx),
		Chains:  r.chainSentiment(ctx),
		PnL:     r.pnlSummary(ctx),
		Skipped: result.Skipped,
	}
	if b, err := json.Marshal(report); err == nil {
		fmt.Println(string(b))
	}

	if err := scanlog.AppendCycle(scanlog.CycleEntry{
		Scanned:  len(result.Rows),
		Bullish:  bulls,
		Bearish:  bears,
		Skipped:  result.Skipped,
		Duration: time.Since(start).Round(time.Millisecond).String(),
	}); err != nil {
		logger.Warn(ctx, "Cycle log write failed", "error", err)
	}
}

// sectorPerformance quotes the sector index instruments in one batch.
func (r *cycleRunner) sectorPerformance(ctx context.Context) []types.SectorPerf {
	indices := universe.SectorIndices
	instruments := make([]string, 0, len(indices))
	for _, inst := range indices {
		instruments = append(instruments, inst)
	}

	ticks, err := r.md.Quotes(ctx, instruments)
	if err != nil {
		logger.Warn(ctx, "Sector index quotes failed", "error", err)
		return nil
	}
	return scan.SectorPerformance(ticks, indices)
}

// chainSentiment summarizes the nearest-expiry chain for each configured
// underlying. A source without chain support yields no entries, not an
// error.
func (r *cycleRunner) chainSentiment(ctx context.Context) map[string]chainView {
	if len(r.cfg.Chain.Underlyings) == 0 {
		return nil
	}
	expiries := chain.ExpiryDates(time.Now().In(ist), r.cfg.Chain.ExpiryCount)
	if len(expiries) == 0 {
		return nil
	}

	thresholds := chain.SentimentThresholds{
		Bull: r.cfg.Chain.PCRBull,
		Bear: r.cfg.Chain.PCRBear,
	}

	out := make(map[string]chainView)
	for _, underlying := range r.cfg.Chain.Underlyings {
		entries, err := r.md.OptionChain(ctx, underlying, expiries[0], r.cfg.Chain.StrikeCount)
		if err != nil {
			logger.Debug(ctx, "Chain sentiment skipped", "underlying", underlying, "error", err)
			continue
		}
		records := chain.Normalize(entries, r.cfg.Chain.StrikeCount)
		if len(records) == 0 {
			continue
		}
		sum := chain.Summarize(records, thresholds)
		out[underlying] = chainView{
			Expiry:    expiries[0],
			PCR:       sum.PCR,
			Sentiment: sum.Sentiment,
			Strikes:   len(records),
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// pnlSummary aggregates account P&L; a source failure is reported as a
// missing section, not a cycle failure.
func (r *cycleRunner) pnlSummary(ctx context.Context) *types.PnLSummary {
	holdings, err := r.md.Holdings(ctx)
	if err != nil {
		logger.Debug(ctx, "Holdings unavailable", "error", err)
		return nil
	}
	positions, err := r.md.Positions(ctx)
	if err != nil {
		logger.Debug(ctx, "Positions unavailable", "error", err)
		return nil
	}
	summary := pnl.Summarize(holdings, positions)
	return &summary
}
