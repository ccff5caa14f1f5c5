// Package scanobs wraps a Scanner with logging and tracing middleware.
package scanobs

import (
	"context"
	"time"

	"breakout-scanner/internal/interfaces"
	"breakout-scanner/internal/logger"
	"breakout-scanner/internal/trace"
	"breakout-scanner/internal/types"
)

type observableScanner struct {
	scanner interfaces.Scanner
}

var _ interfaces.Scanner = (*observableScanner)(nil)

// Wrap wraps a scanner with observability middleware.
func Wrap(scanner interfaces.Scanner) interfaces.Scanner {
	return &observableScanner{scanner: scanner}
}

func (o *observableScanner) Scan(ctx context.Context, symbols []string) (*types.ScanResult, error) {
	ctx, span := trace.StartSpan(ctx, "scanner.Scan")
	defer span.End()

	logger.InfoSkip(ctx, 1, "Scan cycle started", "symbols", len(symbols))
	start := time.Now()

	result, err := o.scanner.Scan(ctx, symbols)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Scan cycle failed", err, "symbols", len(symbols))
		return nil, err
	}

	bulls, bears := 0, 0
	for _, row := range result.Rows {
		switch row.Signal {
		case types.SignalBull:
			bulls++
		case types.SignalBear:
			bears++
		}
	}

	logger.InfoSkip(ctx, 1, "Scan cycle completed",
		"symbols", len(symbols),
		"rows", len(result.Rows),
		"bullish", bulls,
		"bearish", bears,
		"skipped", result.Skipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
