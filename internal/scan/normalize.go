package scan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"breakout-scanner/internal/types"
	"breakout-scanner/internal/universe"
)

// BareSymbol strips the exchange prefix and instrument-class suffix from a
// quote instrument name: "NSE:RELIANCE-EQ" -> "RELIANCE".
func BareSymbol(instrument string) string {
	parts := strings.Split(instrument, ":")
	s := parts[len(parts)-1]
	s = strings.ReplaceAll(s, "-EQ", "")
	s = strings.ReplaceAll(s, "-INDEX", "")
	return s
}

// fieldValue reads one vendor field as a float. An absent or null field
// reports ok=false; a present but non-numeric value is an error, which the
// caller turns into a whole-record skip.
func fieldValue(values map[string]any, key string) (float64, bool, error) {
	raw, ok := values[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("field %q: %w", key, err)
		}
		return f, true, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false, fmt.Errorf("field %q: not numeric: %q", key, v)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("field %q: unsupported type %T", key, raw)
	}
}

// firstField resolves the first present key in order, 0 when none is set.
func firstField(values map[string]any, keys ...string) (float64, error) {
	for _, k := range keys {
		v, ok, err := fieldValue(values, k)
		if err != nil {
			return 0, err
		}
		if ok && v != 0 {
			return v, nil
		}
	}
	return 0, nil
}

// normalizeTick validates one raw quote item into a snapshot.
func normalizeTick(tick types.QuoteTick, sectors map[string]string) (types.QuoteSnapshot, error) {
	if tick.Name == "" {
		return types.QuoteSnapshot{}, fmt.Errorf("quote item has no instrument name")
	}
	short := BareSymbol(tick.Name)

	sector, ok := sectors[short]
	if !ok {
		sector = universe.SectorUnknown
	}

	ltp, err := firstField(tick.Values, "lp", "ltp")
	if err != nil {
		return types.QuoteSnapshot{}, err
	}

	// A missing or zero previous close means zero change, not a gap.
	prevClose, err := firstField(tick.Values, "prev_close_price")
	if err != nil {
		return types.QuoteSnapshot{}, err
	}
	if prevClose == 0 {
		prevClose = ltp
	}

	vol, err := firstField(tick.Values, "volume")
	if err != nil {
		return types.QuoteSnapshot{}, err
	}

	oi, err := firstField(tick.Values, "open_interest")
	if err != nil {
		return types.QuoteSnapshot{}, err
	}

	// Missing previous OI likewise defaults to the current value.
	oiPrev, err := firstField(tick.Values, "prev_open_interest")
	if err != nil {
		return types.QuoteSnapshot{}, err
	}
	if oiPrev == 0 {
		oiPrev = oi
	}

	name := short
	if raw, ok := tick.Values["description"]; ok {
		if s, ok := raw.(string); ok && s != "" {
			name = s
		}
	}

	return types.QuoteSnapshot{
		Symbol:    short,
		Name:      name,
		Sector:    sector,
		LastPrice: ltp,
		PrevClose: prevClose,
		Volume:    vol,
		OICurrent: oi,
		OIPrev:    oiPrev,
	}, nil
}

// BuildSnapshots normalizes a raw quote batch. Malformed items are dropped
// one at a time; a bad item never aborts the rest of the batch. The second
// return value counts the dropped items.
func BuildSnapshots(ticks []types.QuoteTick, sectors map[string]string) ([]types.QuoteSnapshot, int) {
	snaps := make([]types.QuoteSnapshot, 0, len(ticks))
	skipped := 0
	for _, tick := range ticks {
		snap, err := normalizeTick(tick, sectors)
		if err != nil {
			skipped++
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, skipped
}
