package kite

import (
	"context"
	"errors"
	"testing"

	"breakout-scanner/internal/interfaces"
)

func TestToKiteInstrument(t *testing.T) {
	cases := map[string]string{
		"NSE:RELIANCE-EQ":   "NSE:RELIANCE",
		"NSE:NIFTY50-INDEX": "NSE:NIFTY50",
		"NSE:RELIANCE":      "NSE:RELIANCE",
	}
	for in, want := range cases {
		if got := toKiteInstrument(in); got != want {
			t.Errorf("toKiteInstrument(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOptionChainUnsupported(t *testing.T) {
	k := New(Params{APIKey: "key", AccessToken: "token"})
	_, err := k.OptionChain(context.Background(), "NIFTY50", "2024-01-04", 30)
	if !errors.Is(err, interfaces.ErrOptionChainUnsupported) {
		t.Errorf("Expected ErrOptionChainUnsupported, got %v", err)
	}
}

func TestInstrumentMapper(t *testing.T) {
	m := newInstrumentMapper()
	if m.size() != 0 {
		t.Errorf("Expected empty mapper, got size %d", m.size())
	}

	m.addMapping("RELIANCE", 738561)
	token, ok := m.getToken("RELIANCE")
	if !ok || token != 738561 {
		t.Errorf("Expected token 738561, got %d (ok=%v)", token, ok)
	}
	if _, ok := m.getToken("TCS"); ok {
		t.Error("Did not expect a token for an unmapped symbol")
	}
	if m.size() != 1 {
		t.Errorf("Expected size 1, got %d", m.size())
	}
}

func TestNewDefaultsExchange(t *testing.T) {
	k := New(Params{APIKey: "key", AccessToken: "token"})
	if k.exchange != "NSE" {
		t.Errorf("Expected NSE default, got %s", k.exchange)
	}
}
