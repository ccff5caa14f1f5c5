package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"breakout-scanner/internal/broker/brokerobs"
	"breakout-scanner/internal/broker/fyers"
	"breakout-scanner/internal/broker/kite"
	"breakout-scanner/internal/interfaces"
	"breakout-scanner/internal/logger"
	"breakout-scanner/internal/scan"
	"breakout-scanner/internal/scan/scanobs"
	"breakout-scanner/internal/scanlog"
	"breakout-scanner/internal/store"
	"breakout-scanner/internal/trace"
	"breakout-scanner/internal/universe"
)

var ist = time.FixedZone("IST", 19800)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	_ = godotenv.Load()
	must(logger.Init())
	must(trace.Init())

	cfg, err := store.LoadConfig(configPath())
	must(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if v := os.Getenv("SCANNER_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		_ = scanlog.CompressOlder(n)
	}

	md, err := newMarketData(cfg)
	must(err)
	md = brokerobs.Wrap(md)

	scanner := scanobs.Wrap(scan.New(md, universe.Sectors(), scannerOptions(cfg)))
	instruments := scanInstruments(cfg)

	runner := &cycleRunner{cfg: cfg, md: md, scanner: scanner, instruments: instruments}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	logger.Info(ctx, "Scanner started",
		"data_source", cfg.DataSource,
		"instruments", len(instruments),
		"schedule", cfg.ScanSchedule,
	)

	// First cycle immediately, then on schedule.
	runner.run(ctx)

	var c *cron.Cron
	ticks := make(chan struct{}, 1)
	if cfg.ScanSchedule != "" {
		c = cron.New(cron.WithLocation(ist))
		_, err := c.AddFunc(cfg.ScanSchedule, func() {
			select {
			case ticks <- struct{}{}:
			default:
			}
		})
		must(err)
		c.Start()
	} else {
		tick := time.NewTicker(time.Duration(cfg.PollSeconds) * time.Second)
		defer tick.Stop()
		go func() {
			for range tick.C {
				select {
				case ticks <- struct{}{}:
				default:
				}
			}
		}()
	}

	for {
		select {
		case <-ticks:
			runner.run(ctx)
		case <-sigc:
			logger.Info(ctx, "Shutting down")
			if c != nil {
				c.Stop()
			}
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = trace.Shutdown(shutdownCtx)
			shutdownCancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func configPath() string {
	if v := os.Getenv("SCANNER_CONFIG"); v != "" {
		return v
	}
	return "config.yaml"
}

// newMarketData builds the configured data source, with credentials from the
// environment.
func newMarketData(cfg *store.Config) (interfaces.MarketData, error) {
	switch cfg.DataSource {
	case "KITE":
		apiKey := os.Getenv("KITE_API_KEY")
		token := os.Getenv("KITE_ACCESS_TOKEN")
		if apiKey == "" || token == "" {
			return nil, fmt.Errorf("KITE_API_KEY and KITE_ACCESS_TOKEN must be set for data_source KITE")
		}
		return kite.New(kite.Params{APIKey: apiKey, AccessToken: token, Exchange: cfg.Exchange}), nil
	default:
		clientID := os.Getenv("FYERS_CLIENT_ID")
		token := os.Getenv("FYERS_ACCESS_TOKEN")
		if clientID == "" || token == "" {
			return nil, fmt.Errorf("FYERS_CLIENT_ID and FYERS_ACCESS_TOKEN must be set for data_source FYERS")
		}
		return fyers.NewClient(fyers.Params{ClientID: clientID, AccessToken: token}), nil
	}
}

func scannerOptions(cfg *store.Config) scan.Options {
	return scan.Options{
		Params: scan.Params{
			MinVolRatio:     cfg.Scanner.MinVolRatio,
			MinOIChangePct:  cfg.Scanner.MinOIChangePct,
			StrikeWindowPct: cfg.Scanner.StrikeWindowPct,
		},
		Windows: scan.Windows{
			VolWindow:      cfg.Scanner.VolWindow,
			WeekWindow:     cfg.Scanner.WeekWindow,
			FallbackVolAvg: cfg.Scanner.FallbackVolAvg,
		},
		HistoryDays:    cfg.Scanner.HistoryDays,
		MaxConcurrent:  cfg.Scanner.MaxConcurrent,
		UseOptionChain: cfg.Scanner.UseOptionChain,
		StrikeCount:    cfg.Chain.StrikeCount,
	}
}

// scanInstruments expands the configured bare symbols into exchange
// instruments, or falls back to the built-in scan list.
func scanInstruments(cfg *store.Config) []string {
	if len(cfg.Universe.Static) == 0 {
		return scan.DefaultInstruments(nil)
	}
	out := make([]string, len(cfg.Universe.Static))
	for i, sym := range cfg.Universe.Static {
		out[i] = fmt.Sprintf("%s:%s-EQ", cfg.Exchange, sym)
	}
	return out
}
