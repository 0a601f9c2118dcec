package core

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an operation names a meeting id that is not
// in the collection.
var ErrNotFound = errors.New("meeting not found")

// Collection owns the in-memory meeting set and the id sequence. It is the
// sole source of truth; every derived view (schedule summary, active
// confirmed list) is recomputed from Meetings() on read. Not safe for
// concurrent use: the whole application is single-writer by design.
type Collection struct {
	meetings []Meeting
	nextID   int
}

// NewCollection wraps a loaded meeting set. The id sequence continues from
// the highest id seen, so freshly created meetings never collide with
// loaded ones.
func NewCollection(meetings []Meeting) *Collection {
	c := &Collection{meetings: meetings, nextID: 1}
	for _, m := range meetings {
		if m.ID >= c.nextID {
			c.nextID = m.ID + 1
		}
	}
	return c
}

// Meetings returns a copy of the collection's meetings in insertion order.
func (c *Collection) Meetings() []Meeting {
	out := make([]Meeting, len(c.meetings))
	copy(out, c.meetings)
	return out
}

// Len returns the number of meetings.
func (c *Collection) Len() int {
	return len(c.meetings)
}

// Get looks a meeting up by id.
func (c *Collection) Get(id int) (Meeting, bool) {
	for _, m := range c.meetings {
		if m.ID == id {
			return m, true
		}
	}
	return Meeting{}, false
}

func (c *Collection) allocID() int {
	id := c.nextID
	c.nextID++
	return id
}

// Add validates the form and appends a new pending meeting. Incomplete
// option rows are dropped; only fully filled-in candidates persist.
func (c *Collection) Add(form FormData) (Meeting, error) {
	if errs := Validate(form); len(errs) > 0 {
		return Meeting{}, &ValidationError{Fields: errs}
	}

	meetingType := form.MeetingType
	if meetingType == "" {
		meetingType = TypeOffline
	}

	m := Meeting{
		ID:               c.allocID(),
		Name:             strings.TrimSpace(form.Name),
		Image:            form.Image,
		Notes:            form.Notes,
		MeetingType:      meetingType,
		MeetingLocation:  form.MeetingLocation,
		PreferredOptions: form.completeOptions(),
		Status:           StatusPending,
	}
	c.meetings = append(c.meetings, m)
	return m, nil
}

// Update rewrites an existing meeting's editable fields from the form.
// Confirmation fields and status are preserved: editing never un-confirms.
func (c *Collection) Update(id int, form FormData) (Meeting, error) {
	if errs := Validate(form); len(errs) > 0 {
		return Meeting{}, &ValidationError{Fields: errs}
	}

	for i, m := range c.meetings {
		if m.ID != id {
			continue
		}
		m.Name = strings.TrimSpace(form.Name)
		m.Image = form.Image
		m.Notes = form.Notes
		if form.MeetingType != "" {
			m.MeetingType = form.MeetingType
		}
		m.MeetingLocation = form.MeetingLocation
		m.PreferredOptions = form.completeOptions()
		c.meetings[i] = m
		return m, nil
	}
	return Meeting{}, ErrNotFound
}

// Delete removes a meeting.
func (c *Collection) Delete(id int) error {
	for i, m := range c.meetings {
		if m.ID == id {
			c.meetings = append(c.meetings[:i], c.meetings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Confirm finalizes a meeting's slot: date and slot label are mandatory,
// start and end times optional. Transitions the meeting to confirmed.
func (c *Collection) Confirm(id int, date, timeSlot, startTime, endTime string) (Meeting, error) {
	if date == "" || timeSlot == "" {
		return Meeting{}, errors.New("confirmation needs both a date and a time slot")
	}
	for i, m := range c.meetings {
		if m.ID != id {
			continue
		}
		m.ConfirmedDate = date
		m.ConfirmedTimeSlot = timeSlot
		m.ConfirmedStartTime = startTime
		m.ConfirmedEndTime = endTime
		m.Status = StatusConfirmed
		c.meetings[i] = m
		return m, nil
	}
	return Meeting{}, ErrNotFound
}

// ResetConfirmation clears a meeting's confirmation fields and returns it
// to pending.
func (c *Collection) ResetConfirmation(id int) (Meeting, error) {
	for i, m := range c.meetings {
		if m.ID != id {
			continue
		}
		m.ConfirmedDate = ""
		m.ConfirmedTimeSlot = ""
		m.ConfirmedStartTime = ""
		m.ConfirmedEndTime = ""
		m.Status = StatusPending
		c.meetings[i] = m
		return m, nil
	}
	return Meeting{}, ErrNotFound
}

// SetResult records post-meeting notes. Independent of scheduling state.
func (c *Collection) SetResult(id int, result string) (Meeting, error) {
	for i, m := range c.meetings {
		if m.ID != id {
			continue
		}
		m.MeetingResult = result
		c.meetings[i] = m
		return m, nil
	}
	return Meeting{}, ErrNotFound
}

// ImportMeetings merges partially parsed meeting records (typically from a
// calendar import) into the collection. Each record gets a fresh id, a
// default name when none survived parsing, one preferred option seeded
// from the confirmed date and slot when both are present, and a status
// derived from how much of the confirmation was recovered.
func (c *Collection) ImportMeetings(parsed []Meeting) []Meeting {
	added := make([]Meeting, 0, len(parsed))
	for _, p := range parsed {
		m := p
		m.ID = c.allocID()
		if m.Name == "" {
			m.Name = "Untitled meeting"
		}
		if m.MeetingType == "" {
			m.MeetingType = TypeOffline
		}
		if m.ConfirmedDate != "" && m.ConfirmedTimeSlot != "" {
			m.PreferredOptions = []PreferredOption{{Date: m.ConfirmedDate, TimeSlot: m.ConfirmedTimeSlot}}
		} else if m.PreferredOptions == nil {
			m.PreferredOptions = []PreferredOption{}
		}
		if m.ConfirmedDate != "" && m.ConfirmedStartTime != "" && m.ConfirmedEndTime != "" {
			m.Status = StatusConfirmed
		} else {
			m.Status = StatusPending
		}
		c.meetings = append(c.meetings, m)
		added = append(added, m)
	}
	return added
}
