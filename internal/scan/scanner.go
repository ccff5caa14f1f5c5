package scan

import (
	"context"
	"sync"
	"time"

	"breakout-scanner/internal/chain"
	"breakout-scanner/internal/interfaces"
	"breakout-scanner/internal/logger"
	"breakout-scanner/internal/types"
	"breakout-scanner/internal/universe"
)

// Options configures a Scanner.
type Options struct {
	Params         Params
	Windows        Windows
	HistoryDays    int
	MaxConcurrent  int  // cap on in-flight history fetches
	UseOptionChain bool // fetch per-symbol chains for confirmation
	StrikeCount    int
}

func DefaultOptions() Options {
	return Options{
		Params:        DefaultParams(),
		Windows:       DefaultWindows(),
		HistoryDays:   30,
		MaxConcurrent: 4,
		StrikeCount:   30,
	}
}

// Scanner classifies a symbol universe from one quote batch plus per-symbol
// history. It holds no state across cycles; every Scan works from fresh
// snapshots.
type Scanner struct {
	md      interfaces.MarketData
	sectors map[string]string
	opts    Options
}

var _ interfaces.Scanner = (*Scanner)(nil)

func New(md interfaces.MarketData, sectors map[string]string, opts Options) *Scanner {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	return &Scanner{md: md, sectors: sectors, opts: opts}
}

// Scan fetches quotes for all instruments at once, then fans out one
// history fetch per symbol under the concurrency cap and classifies each
// symbol independently. A failed history or chain fetch degrades that one
// symbol to its fallback path; it never fails the batch. Only the quote
// batch itself failing aborts the cycle.
func (s *Scanner) Scan(ctx context.Context, instruments []string) (*types.ScanResult, error) {
	ticks, err := s.md.Quotes(ctx, instruments)
	if err != nil {
		return nil, err
	}

	snaps, skipped := BuildSnapshots(ticks, s.sectors)
	if skipped > 0 {
		logger.Warn(ctx, "Skipped malformed quote items", "count", skipped)
	}

	to := time.Now()
	from := to.AddDate(0, 0, -s.opts.HistoryDays)

	rows := make([]types.ScanRow, len(snaps))
	sem := make(chan struct{}, s.opts.MaxConcurrent)
	var wg sync.WaitGroup

	for i, snap := range snaps {
		wg.Add(1)
		go func(i int, snap types.QuoteSnapshot) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rows[i] = s.scanOne(ctx, instrumentFor(instruments, snap.Symbol), snap, from, to)
		}(i, snap)
	}
	wg.Wait()

	return &types.ScanResult{Time: to.Unix(), Rows: rows, Skipped: skipped}, nil
}

// scanOne classifies a single symbol.
func (s *Scanner) scanOne(ctx context.Context, instrument string, snap types.QuoteSnapshot, from, to time.Time) types.ScanRow {
	candles, err := s.md.History(ctx, instrument, from, to)
	if err != nil {
		// Degrade to the insufficient-history fallback.
		logger.Warn(ctx, "History fetch failed, using fallback aggregate",
			"symbol", snap.Symbol, "error", err)
		candles = nil
	}
	hist := AggregateHistory(candles, snap.PrevClose, s.opts.Windows)

	var records []types.OptionStrikeRecord
	if s.opts.UseOptionChain {
		records = s.fetchChain(ctx, snap.Symbol)
	}

	sig := Classify(snap, hist, records, s.opts.Params)
	return types.ScanRow{
		Snapshot: snap,
		History:  hist,
		VolRatio: VolumeRatio(snap.Volume, hist.Vol20Avg),
		OIPct:    PercentChange(snap.OIPrev, snap.OICurrent),
		Signal:   sig,
	}
}

// fetchChain loads and normalizes the nearest-expiry chain for a symbol.
// Any failure, including a data source without chain support, drops back to
// the base signal path by returning nil.
func (s *Scanner) fetchChain(ctx context.Context, symbol string) []types.OptionStrikeRecord {
	expiries := chain.ExpiryDates(time.Now(), 1)
	if len(expiries) == 0 {
		return nil
	}
	entries, err := s.md.OptionChain(ctx, symbol, expiries[0], s.opts.StrikeCount)
	if err != nil {
		logger.Debug(ctx, "Option chain unavailable, base signal only",
			"symbol", symbol, "error", err)
		return nil
	}
	return chain.Normalize(entries, s.opts.StrikeCount)
}

// instrumentFor maps a bare symbol back to its instrument in the scanned
// list, falling back to the bare symbol itself.
func instrumentFor(instruments []string, symbol string) string {
	for _, inst := range instruments {
		if BareSymbol(inst) == symbol {
			return inst
		}
	}
	return symbol
}

// DefaultInstruments returns the configured universe, or the built-in scan
// list when none is configured.
func DefaultInstruments(configured []string) []string {
	if len(configured) > 0 {
		return configured
	}
	return universe.ScanSymbols
}
