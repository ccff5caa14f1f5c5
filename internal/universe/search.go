package universe

import "strings"

// Search ranks symbols matching a term: exact match first, then prefix
// matches, then substring matches, capped at maxResults.
func Search(term string, symbols []string, maxResults int) []string {
	if term == "" {
		return nil
	}
	upper := strings.ToUpper(strings.TrimSpace(term))

	var exact, prefix, contains []string
	for _, s := range symbols {
		switch {
		case s == upper:
			exact = append(exact, s)
		case strings.HasPrefix(s, upper):
			prefix = append(prefix, s)
		case strings.Contains(s, upper):
			contains = append(contains, s)
		}
	}

	out := append(exact, prefix...)
	out = append(out, contains...)
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
