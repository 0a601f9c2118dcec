package core

import (
	"sort"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// effectiveStart combines a confirmed date with its start time, falling
// back to midnight when no start time is set. Reported in now's location
// so date-only comparisons stay local.
func effectiveStart(m Meeting, loc *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(dateLayout, m.ConfirmedDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	if m.ConfirmedStartTime == "" {
		return day, true
	}
	t, err := time.ParseInLocation(timeLayout, m.ConfirmedStartTime, loc)
	if err != nil {
		return day, true
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
}

// SelectActiveConfirmed returns the confirmed meetings still relevant at
// now, sorted chronologically. Future dates are always visible, past dates
// never are, and a meeting on today's date drops off one hour after its
// start time (or at end of day when no start time is set).
func SelectActiveConfirmed(meetings []Meeting, now time.Time) []Meeting {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var active []Meeting
	for _, m := range meetings {
		if !m.Confirmed() {
			continue
		}
		start, ok := effectiveStart(m, loc)
		if !ok {
			continue
		}
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

		switch {
		case day.After(today):
			// future date, always visible
		case day.Before(today):
			continue
		case m.ConfirmedStartTime != "" && now.After(start.Add(time.Hour)):
			// today, started more than an hour ago
			continue
		}
		active = append(active, m)
	}

	sort.SliceStable(active, func(i, j int) bool {
		a, _ := effectiveStart(active[i], loc)
		b, _ := effectiveStart(active[j], loc)
		return a.Before(b)
	})
	return active
}
