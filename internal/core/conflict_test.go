package core

import (
	"testing"

	"github.com/onsi/gomega"
)

func meetingWithOption(id int, name, date, slot string) Meeting {
	return Meeting{
		ID:     id,
		Name:   name,
		Status: StatusPending,
		PreferredOptions: []PreferredOption{
			{Date: date, TimeSlot: slot},
		},
	}
}

func TestIsOccupiedAgainstOtherMeetings(t *testing.T) {
	g := gomega.NewWithT(t)

	meetings := []Meeting{
		meetingWithOption(1, "Taro", "2025-08-15", "morning"),
		meetingWithOption(2, "Hanako", "2025-08-16", "14-15"),
	}
	form := NewFormData()

	// an hourly slot inside another meeting's coarse slot collides
	g.Expect(IsOccupied("2025-08-15", "10-11", meetings, nil, form, -1)).To(gomega.BeTrue())
	// same date, non-overlapping hours
	g.Expect(IsOccupied("2025-08-15", "13-14", meetings, nil, form, -1)).To(gomega.BeFalse())
	// same slot, different date
	g.Expect(IsOccupied("2025-08-17", "morning", meetings, nil, form, -1)).To(gomega.BeFalse())
	// allday collides with anything on the date
	g.Expect(IsOccupied("2025-08-16", "allday", meetings, nil, form, -1)).To(gomega.BeTrue())
}

func TestIsOccupiedEmptyInputs(t *testing.T) {
	g := gomega.NewWithT(t)

	meetings := []Meeting{meetingWithOption(1, "Taro", "2025-08-15", "morning")}
	form := NewFormData()

	g.Expect(IsOccupied("", "morning", meetings, nil, form, -1)).To(gomega.BeFalse())
	g.Expect(IsOccupied("2025-08-15", "", meetings, nil, form, -1)).To(gomega.BeFalse())
}

func TestIsOccupiedSkipsMeetingBeingEdited(t *testing.T) {
	g := gomega.NewWithT(t)

	editing := meetingWithOption(1, "Taro", "2025-08-15", "morning")
	meetings := []Meeting{editing}
	form := FormFromMeeting(editing)

	// re-saving the meeting's own slot is not a conflict: the only match
	// in the collection is the meeting under edit, and the only match in
	// the form is the field itself.
	g.Expect(IsOccupied("2025-08-15", "morning", meetings, &editing, form, 0)).To(gomega.BeFalse())

	// a second meeting on the same slot still collides
	meetings = append(meetings, meetingWithOption(2, "Hanako", "2025-08-15", "10-11"))
	g.Expect(IsOccupied("2025-08-15", "morning", meetings, &editing, form, 0)).To(gomega.BeTrue())
}

func TestIsOccupiedAgainstFormSiblings(t *testing.T) {
	g := gomega.NewWithT(t)

	form := NewFormData()
	form.PreferredOptions[0] = PreferredOption{Date: "2025-08-20", TimeSlot: "afternoon"}

	// the second option row collides with the first row's slot
	g.Expect(IsOccupied("2025-08-20", "14-15", nil, nil, form, 1)).To(gomega.BeTrue())
	// the first row never collides with itself
	g.Expect(IsOccupied("2025-08-20", "14-15", nil, nil, form, 0)).To(gomega.BeFalse())
	// incomplete sibling rows are ignored
	form.PreferredOptions[2] = PreferredOption{Date: "2025-08-21"}
	g.Expect(IsOccupied("2025-08-21", "morning", nil, nil, form, 1)).To(gomega.BeFalse())
}
