package util

import "time"

// FormatDate renders an ISO calendar date as "Jan 2, 2006 (Mon)" for
// display. Empty and unparseable strings pass through unchanged.
func FormatDate(dateString string) string {
	if dateString == "" {
		return ""
	}
	t, err := time.ParseInLocation("2006-01-02", dateString, time.Local)
	if err != nil {
		return dateString
	}
	return t.Format("Jan 2, 2006 (Mon)")
}

// FormatDateShort renders an ISO calendar date as "Jan 2 (Mon)".
func FormatDateShort(dateString string) string {
	if dateString == "" {
		return ""
	}
	t, err := time.ParseInLocation("2006-01-02", dateString, time.Local)
	if err != nil {
		return dateString
	}
	return t.Format("Jan 2 (Mon)")
}

// Today returns the current local date in ISO form.
func Today() string {
	return time.Now().Format("2006-01-02")
}
