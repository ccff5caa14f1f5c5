package fyers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"breakout-scanner/internal/interfaces"
)

func testFrom() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
func testTo() time.Time   { return time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC) }

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Params{ClientID: "APP-100", AccessToken: "token", BaseURL: srv.URL})
}

func TestQuotesParsesEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "APP-100:token" {
			t.Errorf("Unexpected Authorization header %q", got)
		}
		w.Write([]byte(`{"s":"ok","d":[{"n":"NSE:RELIANCE-EQ","v":{"lp":2500.5,"volume":100000}}]}`))
	})

	ticks, err := c.Quotes(context.Background(), []string{"NSE:RELIANCE-EQ"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ticks) != 1 || ticks[0].Name != "NSE:RELIANCE-EQ" {
		t.Fatalf("Unexpected ticks: %+v", ticks)
	}
	if ticks[0].Values["lp"] != 2500.5 {
		t.Errorf("Expected raw vendor values to pass through, got %v", ticks[0].Values)
	}
}

func TestQuotesErrorEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"s":"error","message":"invalid symbols"}`))
	})

	_, err := c.Quotes(context.Background(), []string{"NSE:BAD-EQ"})
	if err == nil {
		t.Fatal("Expected an error for a non-ok envelope")
	}
	if !errors.Is(err, interfaces.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestHistoryParsesPositionalCandles(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("resolution"); got != "5" {
			t.Errorf("Expected 5-minute resolution, got %q", got)
		}
		w.Write([]byte(`{"s":"ok","candles":[
			[1700000000,100,105,95,102,50000],
			[1700000300,102,103],
			[1700000600,102,108,101,107,60000]
		]}`))
	})

	candles, err := c.History(context.Background(), "NSE:RELIANCE-EQ", testFrom(), testTo())
	if err != nil {
		t.Fatal(err)
	}
	// The short row is dropped, not fatal.
	if len(candles) != 2 {
		t.Fatalf("Expected 2 candles, got %d", len(candles))
	}
	if candles[0].Ts != 1700000000 || candles[0].Vol != 50000 {
		t.Errorf("Unexpected first candle: %+v", candles[0])
	}
	if candles[1].Close != 107 {
		t.Errorf("Unexpected second candle: %+v", candles[1])
	}
}

func TestOptionChainMapsIndexNames(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "NSE:NIFTY50-INDEX" {
			t.Errorf("Expected the index shorthand to expand, got %q", got)
		}
		w.Write([]byte(`{"s":"ok","data":{"optionsChain":[
			{"strike_price":21000,"option_type":"CE","oi":100000}
		]}}`))
	})

	entries, err := c.OptionChain(context.Background(), "NIFTY50", "2024-01-04", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].StrikePrice != 21000 {
		t.Fatalf("Unexpected entries: %+v", entries)
	}
}

func TestHoldingsAndPositions(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/holdings":
			w.Write([]byte(`{"s":"ok","holdings":[{"symbol":"NSE:RELIANCE-EQ","quantity":10,"costPrice":2400,"ltp":2410}]}`))
		case "/api/v3/positions":
			w.Write([]byte(`{"s":"ok","netPositions":[{"symbol":"NSE:TCS-EQ","realized_profit":50,"unrealized_profit":-20}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	holdings, err := c.Holdings(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(holdings) != 1 || holdings[0].Quantity.String() != "10" {
		t.Errorf("Unexpected holdings: %+v", holdings)
	}

	positions, err := c.Positions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 1 || positions[0].Realized.String() != "50" {
		t.Errorf("Unexpected positions: %+v", positions)
	}
}

func TestEquityFundsSumsLimits(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"s":"ok","fund_limit":[
			{"title":"Available Balance","equityAmount":50000,"commodityAmount":0},
			{"title":"Clear Balance","equityAmount":25000,"commodityAmount":0}
		]}`))
	})

	total, err := c.EquityFunds(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if total != 75000 {
		t.Errorf("Expected 75000, got %f", total)
	}
}

func TestAppIDHash(t *testing.T) {
	// SHA-256 is deterministic over clientID:clientSecret.
	h1 := AppIDHash("APP-100", "secret")
	h2 := AppIDHash("APP-100", "secret")
	if h1 != h2 || len(h1) != 64 {
		t.Errorf("Unexpected hash %q / %q", h1, h2)
	}
	if h1 == AppIDHash("APP-100", "other") {
		t.Error("Expected different secrets to hash differently")
	}
}
