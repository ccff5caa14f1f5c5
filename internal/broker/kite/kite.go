// Package kite implements the MarketData interface on top of the Zerodha
// Kite Connect API. Kite has no option chain endpoint, so OptionChain
// reports unsupported and scans run on the base signal alone.
package kite

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"breakout-scanner/internal/interfaces"
	"breakout-scanner/internal/logger"
	"breakout-scanner/internal/pnl"
	"breakout-scanner/internal/types"
)

// Params configures a Kite client.
type Params struct {
	APIKey      string
	AccessToken string
	Exchange    string
}

type Kite struct {
	kc       *kiteconnect.Client
	exchange string
	mapper   *instrumentMapper
}

var _ interfaces.MarketData = (*Kite)(nil)

func New(p Params) *Kite {
	kc := kiteconnect.New(p.APIKey)
	kc.SetAccessToken(p.AccessToken)

	exchange := p.Exchange
	if exchange == "" {
		exchange = "NSE"
	}
	return &Kite{kc: kc, exchange: exchange, mapper: newInstrumentMapper()}
}

// toKiteInstrument converts a scan instrument like "NSE:RELIANCE-EQ" into
// the "NSE:RELIANCE" form Kite expects.
func toKiteInstrument(instrument string) string {
	s := strings.ReplaceAll(instrument, "-EQ", "")
	return strings.ReplaceAll(s, "-INDEX", "")
}

// Quotes fetches a batch quote and re-expresses it as raw ticks under the
// common vendor keys. Kite reports no previous OI, so that key stays unset
// and downstream normalization treats the OI change as zero.
func (k *Kite) Quotes(ctx context.Context, instruments []string) ([]types.QuoteTick, error) {
	kiteInstruments := make([]string, len(instruments))
	for i, inst := range instruments {
		kiteInstruments[i] = toKiteInstrument(inst)
	}

	quotes, err := k.kc.GetQuote(kiteInstruments...)
	if err != nil {
		return nil, fmt.Errorf("kite quotes: %w: %s", interfaces.ErrUnavailable, err)
	}

	ticks := make([]types.QuoteTick, 0, len(instruments))
	for i, kiteInst := range kiteInstruments {
		q, ok := quotes[kiteInst]
		if !ok {
			continue
		}
		ticks = append(ticks, types.QuoteTick{
			Name: instruments[i],
			Values: map[string]any{
				"lp":               q.LastPrice,
				"prev_close_price": q.OHLC.Close,
				"volume":           float64(q.Volume),
				"open_interest":    q.OI,
			},
		})
	}
	return ticks, nil
}

// History fetches 5-minute candles via the historical data API, resolving
// the instrument token lazily from the exchange instrument dump.
func (k *Kite) History(ctx context.Context, instrument string, from, to time.Time) ([]types.Candle, error) {
	token, err := k.resolveToken(ctx, instrument)
	if err != nil {
		return nil, err
	}

	data, err := k.kc.GetHistoricalData(token, "5minute", from, to, false, true)
	if err != nil {
		return nil, fmt.Errorf("kite history: %w: %s", interfaces.ErrUnavailable, err)
	}

	candles := make([]types.Candle, 0, len(data))
	for _, d := range data {
		candles = append(candles, types.Candle{
			Ts:    d.Date.Unix(),
			Open:  d.Open,
			High:  d.High,
			Low:   d.Low,
			Close: d.Close,
			Vol:   float64(d.Volume),
		})
	}
	return candles, nil
}

// OptionChain is not available on Kite Connect.
func (k *Kite) OptionChain(ctx context.Context, underlying, expiry string, strikeCount int) ([]types.OptionEntry, error) {
	return nil, interfaces.ErrOptionChainUnsupported
}

// Holdings fetches holdings and re-expresses them as raw lines for the P&L
// aggregator.
func (k *Kite) Holdings(ctx context.Context) ([]pnl.HoldingLine, error) {
	holdings, err := k.kc.GetHoldings()
	if err != nil {
		return nil, fmt.Errorf("kite holdings: %w: %s", interfaces.ErrUnavailable, err)
	}

	lines := make([]pnl.HoldingLine, 0, len(holdings))
	for _, h := range holdings {
		lines = append(lines, pnl.HoldingLine{
			Symbol:    h.Tradingsymbol,
			Quantity:  json.Number(strconv.Itoa(h.Quantity)),
			CostPrice: floatNumber(h.AveragePrice),
			LTP:       floatNumber(h.LastPrice),
		})
	}
	return lines, nil
}

// Positions fetches net positions as raw lines.
func (k *Kite) Positions(ctx context.Context) ([]pnl.PositionLine, error) {
	positions, err := k.kc.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("kite positions: %w: %s", interfaces.ErrUnavailable, err)
	}

	lines := make([]pnl.PositionLine, 0, len(positions.Net))
	for _, p := range positions.Net {
		lines = append(lines, pnl.PositionLine{
			Symbol:     p.Tradingsymbol,
			Realized:   floatNumber(p.Realised),
			Unrealized: floatNumber(p.Unrealised),
		})
	}
	return lines, nil
}

// resolveToken looks up the instrument token, loading the exchange
// instrument dump on first use.
func (k *Kite) resolveToken(ctx context.Context, instrument string) (int, error) {
	symbol := toKiteInstrument(instrument)
	if i := strings.Index(symbol, ":"); i >= 0 {
		symbol = symbol[i+1:]
	}

	if token, ok := k.mapper.getToken(symbol); ok {
		return token, nil
	}

	if k.mapper.size() == 0 {
		if err := k.loadInstruments(ctx); err != nil {
			return 0, err
		}
		if token, ok := k.mapper.getToken(symbol); ok {
			return token, nil
		}
	}
	return 0, fmt.Errorf("kite history: unknown instrument %q: %w", instrument, interfaces.ErrUnavailable)
}

func (k *Kite) loadInstruments(ctx context.Context) error {
	instruments, err := k.kc.GetInstrumentsByExchange(k.exchange)
	if err != nil {
		return fmt.Errorf("kite instruments: %w: %s", interfaces.ErrUnavailable, err)
	}
	for _, inst := range instruments {
		k.mapper.addMapping(inst.Tradingsymbol, inst.InstrumentToken)
	}
	logger.Info(ctx, "Loaded instrument dump", "exchange", k.exchange, "count", k.mapper.size())
	return nil
}

func floatNumber(f float64) json.Number {
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}
