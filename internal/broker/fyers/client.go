// Package fyers implements the MarketData interface over the Fyers v3 REST
// API: batch quotes, 5-minute history, option chains, holdings, positions
// and funds.
package fyers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"breakout-scanner/internal/api"
	"breakout-scanner/internal/interfaces"
	"breakout-scanner/internal/pnl"
	"breakout-scanner/internal/types"
)

const defaultBaseURL = "https://api-t1.fyers.in"

// Params configures a Fyers client.
type Params struct {
	ClientID    string
	AccessToken string
	BaseURL     string
}

type Client struct {
	api *api.Client
	p   Params
}

var _ interfaces.MarketData = (*Client)(nil)

func NewClient(p Params) *Client {
	if p.BaseURL == "" {
		p.BaseURL = defaultBaseURL
	}
	return &Client{
		api: api.NewClient(
			api.WithBaseURL(p.BaseURL),
			api.WithTimeout(15*time.Second),
			api.WithHeader("Authorization", p.ClientID+":"+p.AccessToken),
			api.WithLogging(true),
		),
		p: p,
	}
}

// envelopeErr converts a non-ok envelope into a distinguishable
// unavailable error for the one request that failed.
func envelopeErr(op, status, message string) error {
	if message == "" {
		message = status
	}
	return fmt.Errorf("fyers %s: %s: %w", op, message, interfaces.ErrUnavailable)
}

// Quotes fetches a batch quote snapshot. The raw vendor value maps are
// passed through untouched; normalization happens in the scan package.
func (c *Client) Quotes(ctx context.Context, instruments []string) ([]types.QuoteTick, error) {
	u := "/data/quotes?symbols=" + url.QueryEscape(strings.Join(instruments, ","))
	resp, err := c.api.GET(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fyers quotes: %w", err)
	}

	var env quotesEnvelope
	if err := resp.ParseJSON(&env); err != nil {
		return nil, fmt.Errorf("fyers quotes: %w", err)
	}
	if env.S != statusOK {
		return nil, envelopeErr("quotes", env.S, env.Message)
	}
	return env.D, nil
}

// History fetches the 5-minute candle series for one instrument. Rows with
// fewer than six fields are dropped individually.
func (c *Client) History(ctx context.Context, instrument string, from, to time.Time) ([]types.Candle, error) {
	q := url.Values{}
	q.Set("symbol", instrument)
	q.Set("resolution", "5")
	q.Set("date_format", "1")
	q.Set("range_from", strconv.FormatInt(from.Unix(), 10))
	q.Set("range_to", strconv.FormatInt(to.Unix(), 10))
	q.Set("cont_flag", "1")

	resp, err := c.api.GET(ctx, "/data/history?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fyers history: %w", err)
	}

	var env historyEnvelope
	if err := resp.ParseJSON(&env); err != nil {
		return nil, fmt.Errorf("fyers history: %w", err)
	}
	if env.S != statusOK {
		return nil, envelopeErr("history", env.S, env.Message)
	}

	candles := make([]types.Candle, 0, len(env.Candles))
	for _, row := range env.Candles {
		if len(row) < 6 {
			continue
		}
		candles = append(candles, types.Candle{
			Ts:    int64(row[0]),
			Open:  row[1],
			High:  row[2],
			Low:   row[3],
			Close: row[4],
			Vol:   row[5],
		})
	}
	return candles, nil
}

// OptionChain fetches the raw chain for an underlying. Index shorthand
// names map to their full quote instruments.
func (c *Client) OptionChain(ctx context.Context, underlying, expiry string, strikeCount int) ([]types.OptionEntry, error) {
	symbol := underlying
	switch underlying {
	case "NIFTY50":
		symbol = "NSE:NIFTY50-INDEX"
	case "BANKNIFTY":
		symbol = "NSE:NIFTYBANK-INDEX"
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("strikecount", strconv.Itoa(strikeCount))
	q.Set("timestamp", "")

	resp, err := c.api.GET(ctx, "/data/options-chain-v3?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fyers option chain: %w", err)
	}

	var env chainEnvelope
	if err := resp.ParseJSON(&env); err != nil {
		return nil, fmt.Errorf("fyers option chain: %w", err)
	}
	if env.S != statusOK {
		return nil, envelopeErr("option chain", env.S, env.Message)
	}
	return env.Data.OptionsChain, nil
}

// Holdings fetches the raw holdings listing.
func (c *Client) Holdings(ctx context.Context) ([]pnl.HoldingLine, error) {
	resp, err := c.api.GET(ctx, "/api/v3/holdings")
	if err != nil {
		return nil, fmt.Errorf("fyers holdings: %w", err)
	}

	var env holdingsEnvelope
	if err := resp.ParseJSON(&env); err != nil {
		return nil, fmt.Errorf("fyers holdings: %w", err)
	}
	if env.S != statusOK {
		return nil, envelopeErr("holdings", env.S, env.Message)
	}
	return env.Holdings, nil
}

// Positions fetches the raw net-positions listing.
func (c *Client) Positions(ctx context.Context) ([]pnl.PositionLine, error) {
	resp, err := c.api.GET(ctx, "/api/v3/positions")
	if err != nil {
		return nil, fmt.Errorf("fyers positions: %w", err)
	}

	var env positionsEnvelope
	if err := resp.ParseJSON(&env); err != nil {
		return nil, fmt.Errorf("fyers positions: %w", err)
	}
	if env.S != statusOK {
		return nil, envelopeErr("positions", env.S, env.Message)
	}
	return env.NetPositions, nil
}

// EquityFunds fetches the available equity funds balance.
func (c *Client) EquityFunds(ctx context.Context) (float64, error) {
	resp, err := c.api.GET(ctx, "/api/v3/funds")
	if err != nil {
		return 0, fmt.Errorf("fyers funds: %w", err)
	}

	var env fundsEnvelope
	if err := resp.ParseJSON(&env); err != nil {
		return 0, fmt.Errorf("fyers funds: %w", err)
	}
	if env.S != statusOK {
		return 0, envelopeErr("funds", env.S, env.Message)
	}

	total := 0.0
	for _, f := range env.FundLimits {
		total += f.EquityAmount
	}
	return total, nil
}
