package interfaces

import (
	"context"

	"breakout-scanner/internal/types"
)

type Scanner interface {
	Scan(ctx context.Context, symbols []string) (*types.ScanResult, error)
}
