// Package ics implements the calendar interchange codec: it serializes
// confirmed meetings into iCalendar text with reminder alarms and parses
// such text back into candidate meeting records.
//
// The format handling is deliberately line-oriented and byte-stable so
// that export output round-trips through the parser unchanged. Folded
// continuation lines are not unfolded on parse; see Parse.
package ics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/torisaki/mtg/internal/core"
)

// ErrNoConfirmed is returned by EncodeAll when no meeting passes the
// batch-export filter.
var ErrNoConfirmed = errors.New("no confirmed meetings to export")

const (
	crlf       = "\r\n"
	calHeader  = "BEGIN:VCALENDAR" + crlf + "VERSION:2.0" + crlf + "PRODID:-//Meeting Scheduler//Meeting Calendar//EN"
	calFooter  = "END:VCALENDAR"
	uidDomain  = "meetingscheduler.local"
	namePrefix = "meeting - "
)

// summaryTag renders the online/offline marker that leads the SUMMARY line.
func summaryTag(t core.MeetingType) string {
	if t == core.TypeOnline {
		return "[online] "
	}
	return "[offline] "
}

// exportable reports whether a meeting carries everything a calendar
// event needs.
func exportable(m core.Meeting) bool {
	return m.ConfirmedDate != "" && m.ConfirmedStartTime != "" && m.ConfirmedEndTime != ""
}

// localTimes combines the confirmed local date with the local start and
// end times of day.
func localTimes(m core.Meeting) (start, end time.Time, err error) {
	day, err := time.ParseInLocation("2006-01-02", m.ConfirmedDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("confirmed date: %w", err)
	}
	st, err := time.ParseInLocation("15:04", m.ConfirmedStartTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start time: %w", err)
	}
	et, err := time.ParseInLocation("15:04", m.ConfirmedEndTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end time: %w", err)
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), st.Hour(), st.Minute(), 0, 0, time.Local)
	end = time.Date(day.Year(), day.Month(), day.Day(), et.Hour(), et.Minute(), 0, 0, time.Local)
	return start, end, nil
}

// formatStamp renders an instant as a UTC iCalendar timestamp.
func formatStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405") + "Z"
}

// eventBlock renders one VEVENT with its alarm sub-blocks. reminders is a
// list of minutes-before-start offsets.
func eventBlock(m core.Meeting, reminders []int, now time.Time) (string, error) {
	start, end, err := localTimes(m)
	if err != nil {
		return "", err
	}

	description := "Scheduled meeting"
	if m.Notes != "" {
		description = strings.ReplaceAll(m.Notes, "\n", `\n`)
	}

	lines := []string{
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%d-%d@%s", m.ID, now.UnixMilli(), uidDomain),
		"DTSTAMP:" + formatStamp(now),
		"DTSTART:" + formatStamp(start),
		"DTEND:" + formatStamp(end),
		"SUMMARY:" + summaryTag(m.MeetingType) + namePrefix + m.Name,
		"DESCRIPTION:" + description,
		"STATUS:CONFIRMED",
	}
	for _, minutes := range reminders {
		lines = append(lines,
			"BEGIN:VALARM",
			fmt.Sprintf("TRIGGER:-PT%dM", minutes),
			"ACTION:DISPLAY",
			fmt.Sprintf("DESCRIPTION:Meeting starts in %d minutes", minutes),
			"END:VALARM",
		)
	}
	lines = append(lines, "END:VEVENT")
	return strings.Join(lines, crlf), nil
}

// Encode serializes a single confirmed meeting into a complete calendar
// document. Returns ok=false without output when the meeting lacks a
// confirmed date, start time, or end time.
func Encode(m core.Meeting, reminders []int, now time.Time) (string, bool, error) {
	if !exportable(m) {
		return "", false, nil
	}
	event, err := eventBlock(m, reminders, now)
	if err != nil {
		return "", false, err
	}
	return calHeader + crlf + event + crlf + calFooter, true, nil
}

// EncodeAll serializes every exportable confirmed meeting into one
// calendar document. Returns ErrNoConfirmed when nothing passes the
// filter, so the caller can surface a warning instead of writing an
// empty file.
func EncodeAll(meetings []core.Meeting, reminders []int, now time.Time) (string, error) {
	var events []string
	for _, m := range meetings {
		if m.Status != core.StatusConfirmed || !exportable(m) {
			continue
		}
		event, err := eventBlock(m, reminders, now)
		if err != nil {
			return "", fmt.Errorf("meeting %d: %w", m.ID, err)
		}
		events = append(events, event)
	}
	if len(events) == 0 {
		return "", ErrNoConfirmed
	}
	parts := append([]string{calHeader}, events...)
	parts = append(parts, calFooter)
	return strings.Join(parts, crlf), nil
}

// Filename names a single-meeting export deterministically from the
// meeting name and confirmed date.
func Filename(m core.Meeting) string {
	return fmt.Sprintf("meeting_%s_%s.ics", m.Name, m.ConfirmedDate)
}

// BatchFilename names a batch export after the span of confirmed dates it
// covers.
func BatchFilename(meetings []core.Meeting) string {
	var dates []string
	for _, m := range meetings {
		if m.Status == core.StatusConfirmed && exportable(m) {
			dates = append(dates, m.ConfirmedDate)
		}
	}
	if len(dates) == 0 {
		return "confirmed_meetings.ics"
	}
	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	if min == max {
		return fmt.Sprintf("confirmed_meetings_%s.ics", min)
	}
	return fmt.Sprintf("confirmed_meetings_%s_%s.ics", min, max)
}
