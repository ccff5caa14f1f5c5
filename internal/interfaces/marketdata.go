package interfaces

import (
	"context"
	"errors"
	"time"

	"breakout-scanner/internal/pnl"
	"breakout-scanner/internal/types"
)

// ErrUnavailable marks an upstream fetch failure. Per-symbol callers treat
// it as insufficient data and fall back; they never abort the batch on it.
var ErrUnavailable = errors.New("market data unavailable")

// ErrOptionChainUnsupported is returned by data sources that have no option
// chain endpoint. The classifier then runs on the base signal alone.
var ErrOptionChainUnsupported = errors.New("option chain not supported by data source")

// MarketData is the snapshot-oriented view of a broker data API. All methods
// are plain request/response; transport, auth and retries live behind it.
type MarketData interface {
	// Quotes fetches one batch quote tick per requested instrument.
	Quotes(ctx context.Context, instruments []string) ([]types.QuoteTick, error)

	// History fetches the 5-minute candle series for one instrument,
	// oldest first, over the given date range.
	History(ctx context.Context, instrument string, from, to time.Time) ([]types.Candle, error)

	// OptionChain fetches the raw option chain for an underlying and expiry.
	OptionChain(ctx context.Context, underlying, expiry string, strikeCount int) ([]types.OptionEntry, error)

	// Holdings fetches the raw holdings listing.
	Holdings(ctx context.Context) ([]pnl.HoldingLine, error)

	// Positions fetches the raw net-positions listing.
	Positions(ctx context.Context) ([]pnl.PositionLine, error)
}
