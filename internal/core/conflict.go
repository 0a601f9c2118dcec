package core

// IsOccupied decides whether a candidate (date, slot) pair collides with
// anything already on the books. It scans every other meeting's preferred
// options and then the in-progress form's sibling rows, so a field never
// conflicts with itself and a meeting being edited never conflicts with
// its own prior state.
//
// Pure and cheap enough to call on every keystroke: O(meetings × options).
func IsOccupied(date, timeSlot string, meetings []Meeting, editing *Meeting, form FormData, optionIndex int) bool {
	if date == "" || timeSlot == "" {
		return false
	}

	for _, m := range meetings {
		if editing != nil && m.ID == editing.ID {
			continue
		}
		for _, o := range m.PreferredOptions {
			if o.Date != date || o.TimeSlot == "" {
				continue
			}
			if Overlaps(o.TimeSlot, timeSlot) {
				return true
			}
		}
	}

	for i, o := range form.PreferredOptions {
		if i == optionIndex {
			continue
		}
		if o.Date != date || o.TimeSlot == "" {
			continue
		}
		if Overlaps(o.TimeSlot, timeSlot) {
			return true
		}
	}

	return false
}
