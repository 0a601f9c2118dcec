package ics

import (
	"regexp"
	"strings"
	"time"

	"github.com/torisaki/mtg/internal/core"
)

var (
	tagRe  = regexp.MustCompile(`^\[(online|offline)\]\s*`)
	nameRe = regexp.MustCompile(`^meeting\s*-\s*`)
)

// slotForHour classifies a start hour into a coarse slot label for
// imported events. These thresholds are intentionally looser than the
// live overlap table (13-15 vs 13-16 for afternoon) and must stay
// separate from it.
func slotForHour(hour int) string {
	switch {
	case hour >= 10 && hour < 12:
		return "morning"
	case hour >= 13 && hour < 16:
		return "afternoon"
	case hour >= 17:
		return "evening"
	default:
		return "allday"
	}
}

// ParseStamp parses an iCalendar date or date-time value. The compact UTC
// form YYYYMMDDTHHMMSSZ yields an absolute instant; a bare YYYYMMDD yields
// local midnight of that date. Anything else reports ok=false so callers
// can skip the field without aborting the import.
func ParseStamp(s string) (time.Time, bool) {
	if strings.HasSuffix(s, "Z") && len(s) == 16 {
		t, err := time.Parse("20060102T150405Z", s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if len(s) == 8 {
		t, err := time.ParseInLocation("20060102", s, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// parseSummary recovers the meeting name and type from a SUMMARY value.
// Both the online/offline tag and the "meeting - " prefix are stripped so
// that our own exports round-trip; a summary that strips down to nothing
// keeps its original text.
func parseSummary(summary string) (name string, meetingType core.MeetingType) {
	rest := summary
	if m := tagRe.FindStringSubmatch(rest); m != nil {
		meetingType = core.MeetingType(m[1])
		rest = rest[len(m[0]):]
	}
	rest = nameRe.ReplaceAllString(rest, "")
	if rest == "" {
		rest = summary
	}
	return rest, meetingType
}

// Parse scans calendar text line by line and extracts one candidate
// meeting record per VEVENT. Events without a usable name are discarded.
// Ids are left zero and status pending; the collection assigns both when
// the records are merged.
//
// Known limitation: folded continuation lines are not unfolded, matching
// the behavior this importer replaces. Long third-party SUMMARY or
// DESCRIPTION values may come through truncated.
func Parse(content string) []core.Meeting {
	var events []core.Meeting
	var current *core.Meeting
	inEvent := false
	inAlarm := false

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "BEGIN:VEVENT":
			inEvent = true
			current = &core.Meeting{
				PreferredOptions: []core.PreferredOption{},
				Status:           core.StatusPending,
			}

		case line == "END:VEVENT" && current != nil:
			inEvent = false
			inAlarm = false
			if current.Name != "" {
				events = append(events, *current)
			}
			current = nil

		// alarm sub-blocks carry their own SUMMARY/DESCRIPTION lines;
		// none of their properties belong to the event
		case line == "BEGIN:VALARM":
			inAlarm = true

		case line == "END:VALARM":
			inAlarm = false

		case inEvent && !inAlarm && current != nil:
			switch {
			case strings.HasPrefix(line, "SUMMARY:"):
				current.Name, current.MeetingType = parseSummary(line[len("SUMMARY:"):])

			case strings.HasPrefix(line, "DESCRIPTION:"):
				current.Notes = strings.ReplaceAll(line[len("DESCRIPTION:"):], `\n`, "\n")

			case strings.HasPrefix(line, "DTSTART:"):
				if t, ok := ParseStamp(line[len("DTSTART:"):]); ok {
					local := t.In(time.Local)
					current.ConfirmedDate = local.Format("2006-01-02")
					current.ConfirmedStartTime = local.Format("15:04")
					current.ConfirmedTimeSlot = slotForHour(local.Hour())
				}

			case strings.HasPrefix(line, "DTEND:"):
				if t, ok := ParseStamp(line[len("DTEND:"):]); ok {
					current.ConfirmedEndTime = t.In(time.Local).Format("15:04")
				}
			}
		}
	}

	return events
}
