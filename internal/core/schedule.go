package core

import "sort"

// BuildSummary projects all pending meetings' complete preferred options
// into rows grouped by date. Confirmed meetings contribute nothing: once a
// slot is finalized the remaining candidates are no longer open.
//
// Rows are sorted ascending by date only; ties keep the scan order
// (meeting order, then option priority), so within a date the grouping is
// stable.
func BuildSummary(meetings []Meeting) map[string][]Schedule {
	var rows []Schedule

	for _, m := range meetings {
		if m.Status == StatusConfirmed {
			continue
		}
		for i, o := range m.PreferredOptions {
			if !o.Complete() {
				continue
			}
			rows = append(rows, Schedule{
				Date:            o.Date,
				TimeSlot:        o.TimeSlot,
				MeetingName:     m.Name,
				MeetingImage:    m.Image,
				Priority:        i + 1,
				Notes:           m.Notes,
				MeetingType:     m.MeetingType,
				MeetingLocation: m.MeetingLocation,
			})
		}
	}

	// ISO dates compare correctly as strings.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	grouped := make(map[string][]Schedule)
	for _, row := range rows {
		grouped[row.Date] = append(grouped[row.Date], row)
	}
	return grouped
}

// SummaryDates returns the summary's date keys in ascending order, for
// deterministic iteration when rendering.
func SummaryDates(summary map[string][]Schedule) []string {
	dates := make([]string, 0, len(summary))
	for d := range summary {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
