package chain

import "time"

// ExpiryDates returns the next count weekly option expiries (Thursdays,
// today included) as YYYY-MM-DD strings, looking ahead four weeks.
func ExpiryDates(now time.Time, count int) []string {
	var expiries []string
	for i := 0; i < 28 && len(expiries) < count; i++ {
		d := now.AddDate(0, 0, i)
		if d.Weekday() == time.Thursday {
			expiries = append(expiries, d.Format("2006-01-02"))
		}
	}
	return expiries
}
