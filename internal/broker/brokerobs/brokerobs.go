// Package brokerobs wraps a MarketData source with logging and tracing
// middleware.
package brokerobs

import (
	"context"
	"time"

	"breakout-scanner/internal/interfaces"
	"breakout-scanner/internal/logger"
	"breakout-scanner/internal/pnl"
	"breakout-scanner/internal/trace"
	"breakout-scanner/internal/types"
)

type observableMarketData struct {
	md interfaces.MarketData
}

var _ interfaces.MarketData = (*observableMarketData)(nil)

// Wrap wraps a market data source with observability middleware.
func Wrap(md interfaces.MarketData) interfaces.MarketData {
	return &observableMarketData{md: md}
}

func (o *observableMarketData) Quotes(ctx context.Context, instruments []string) ([]types.QuoteTick, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.Quotes")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching quotes", "count", len(instruments))

	ticks, err := o.md.Quotes(ctx, instruments)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch quotes", err, "count", len(instruments))
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Quotes fetched successfully", "requested", len(instruments), "received", len(ticks))
	return ticks, nil
}

func (o *observableMarketData) History(ctx context.Context, instrument string, from, to time.Time) ([]types.Candle, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.History")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching history", "instrument", instrument)

	candles, err := o.md.History(ctx, instrument, from, to)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch history", err, "instrument", instrument)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "History fetched successfully", "instrument", instrument, "candles", len(candles))
	return candles, nil
}

func (o *observableMarketData) OptionChain(ctx context.Context, underlying, expiry string, strikeCount int) ([]types.OptionEntry, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.OptionChain")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching option chain", "underlying", underlying, "expiry", expiry, "strikes", strikeCount)

	entries, err := o.md.OptionChain(ctx, underlying, expiry, strikeCount)
	if err != nil {
		logger.DebugSkip(ctx, 1, "Option chain fetch failed", "underlying", underlying, "error", err)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Option chain fetched successfully", "underlying", underlying, "entries", len(entries))
	return entries, nil
}

func (o *observableMarketData) Holdings(ctx context.Context) ([]pnl.HoldingLine, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.Holdings")
	defer span.End()

	lines, err := o.md.Holdings(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch holdings", err)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Holdings fetched successfully", "count", len(lines))
	return lines, nil
}

func (o *observableMarketData) Positions(ctx context.Context) ([]pnl.PositionLine, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.Positions")
	defer span.End()

	lines, err := o.md.Positions(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch positions", err)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Positions fetched successfully", "count", len(lines))
	return lines, nil
}
