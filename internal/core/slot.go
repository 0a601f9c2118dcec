package core

import "fmt"

// TimeSlot is one entry in the slot vocabulary shown to the user.
// Disabled entries are presentation-only separators; they can never be
// selected and never take part in occupancy checks.
type TimeSlot struct {
	Value    string
	Label    string
	Disabled bool
}

// Slots is the fixed slot vocabulary, in display order. The Value strings
// are part of the persisted format and must never be renamed.
var Slots = buildSlots()

func buildSlots() []TimeSlot {
	slots := []TimeSlot{
		{Value: "allday", Label: "All day"},
		{Value: "sep-coarse", Label: "── time of day ──", Disabled: true},
		{Value: "morning", Label: "10:00 ~ 12:00"},
		{Value: "afternoon", Label: "13:00 ~ 16:00"},
		{Value: "evening", Label: "17:00 onwards"},
		{Value: "sep-hourly", Label: "── hourly ──", Disabled: true},
	}
	for h := 10; h <= 18; h++ {
		slots = append(slots, TimeSlot{
			Value: fmt.Sprintf("%d-%d", h, h+1),
			Label: fmt.Sprintf("%02d:00 ~ %02d:00", h, h+1),
		})
	}
	return slots
}

// hourRanges maps every selectable label to its half-open hour interval.
var hourRanges = buildHourRanges()

func buildHourRanges() map[string][2]int {
	ranges := map[string][2]int{
		"allday":    {0, 24},
		"morning":   {10, 12},
		"afternoon": {13, 16},
		"evening":   {17, 24},
	}
	for h := 10; h <= 18; h++ {
		ranges[fmt.Sprintf("%d-%d", h, h+1)] = [2]int{h, h + 1}
	}
	return ranges
}

// HourRange resolves a slot label to its half-open hour interval [start, end).
// Unknown and disabled labels report ok=false.
func HourRange(label string) (start, end int, ok bool) {
	r, ok := hourRanges[label]
	if !ok {
		return 0, 0, false
	}
	return r[0], r[1], true
}

// SlotLabel returns the display label for a slot value. Unknown values are
// returned unchanged so stale data still renders as something.
func SlotLabel(value string) string {
	for _, s := range Slots {
		if s.Value == value {
			return s.Label
		}
	}
	return value
}

// ValidSlot reports whether value is a selectable slot label.
func ValidSlot(value string) bool {
	_, ok := hourRanges[value]
	return ok
}

// Overlaps reports whether two slot labels denote overlapping wall-clock
// ranges. An all-day slot overlaps everything, a label always overlaps
// itself, and otherwise the two hour ranges are intersected as half-open
// intervals. Labels that do not resolve to a range never overlap.
func Overlaps(a, b string) bool {
	if a == "allday" || b == "allday" {
		return true
	}
	if a == b {
		return true
	}
	aStart, aEnd, ok := HourRange(a)
	if !ok {
		return false
	}
	bStart, bEnd, ok := HourRange(b)
	if !ok {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}
