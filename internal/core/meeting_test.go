package core

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestConfirmedNeedsDateAndSlot(t *testing.T) {
	g := gomega.NewWithT(t)

	m := Meeting{Status: StatusConfirmed, ConfirmedDate: "2025-09-01", ConfirmedTimeSlot: "morning"}
	g.Expect(m.Confirmed()).To(gomega.BeTrue())

	// inconsistent records (hand-edited files, partial imports) must not
	// pass the predicate on one field alone
	g.Expect(Meeting{Status: StatusConfirmed, ConfirmedDate: "2025-09-01"}.Confirmed()).To(gomega.BeFalse())
	g.Expect(Meeting{Status: StatusConfirmed, ConfirmedTimeSlot: "morning"}.Confirmed()).To(gomega.BeFalse())
	g.Expect(Meeting{Status: StatusPending, ConfirmedDate: "2025-09-01", ConfirmedTimeSlot: "morning"}.Confirmed()).To(gomega.BeFalse())
}

func TestFormFromMeetingPadsOptions(t *testing.T) {
	g := gomega.NewWithT(t)

	m := Meeting{
		Name:             "Taro",
		PreferredOptions: []PreferredOption{{Date: "2025-09-01", TimeSlot: "morning"}},
	}
	form := FormFromMeeting(m)
	g.Expect(form.PreferredOptions).To(gomega.HaveLen(MaxPreferredOptions))
	g.Expect(form.PreferredOptions[0]).To(gomega.Equal(m.PreferredOptions[0]))
	g.Expect(form.PreferredOptions[1].Complete()).To(gomega.BeFalse())
	g.Expect(form.MeetingType).To(gomega.Equal(TypeOffline))
}
