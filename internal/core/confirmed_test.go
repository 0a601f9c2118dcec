package core

import (
	"testing"
	"time"

	"github.com/onsi/gomega"
)

func confirmedOn(id int, date, start string) Meeting {
	return Meeting{
		ID:                 id,
		Name:               "m",
		Status:             StatusConfirmed,
		ConfirmedDate:      date,
		ConfirmedTimeSlot:  "morning",
		ConfirmedStartTime: start,
	}
}

func TestSelectActiveConfirmedDateWindow(t *testing.T) {
	g := gomega.NewWithT(t)

	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.Local)
	meetings := []Meeting{
		confirmedOn(1, "2025-08-30", "10:00"), // yesterday
		confirmedOn(2, "2025-09-01", "10:00"), // tomorrow
		confirmedOn(3, "2025-12-25", ""),      // far future, no start time
		{ID: 4, Name: "pending", Status: StatusPending},
	}

	active := SelectActiveConfirmed(meetings, now)
	g.Expect(active).To(gomega.HaveLen(2))
	g.Expect(active[0].ID).To(gomega.Equal(2))
	g.Expect(active[1].ID).To(gomega.Equal(3))
}

func TestSelectActiveConfirmedTodayGracePeriod(t *testing.T) {
	g := gomega.NewWithT(t)

	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.Local)
	meetings := []Meeting{
		confirmedOn(1, "2025-08-31", "10:59"), // ended grace period at 11:59
		confirmedOn(2, "2025-08-31", "11:01"), // grace period runs to 12:01
		confirmedOn(3, "2025-08-31", "11:00"), // boundary: drops exactly after 12:00
		confirmedOn(4, "2025-08-31", ""),      // no start time, visible all day
	}

	active := SelectActiveConfirmed(meetings, now)
	ids := make([]int, len(active))
	for i, m := range active {
		ids[i] = m.ID
	}
	// sorted by effective start: midnight fallback first, then by time
	g.Expect(ids).To(gomega.Equal([]int{4, 3, 2}))
}

func TestSelectActiveConfirmedSortsChronologically(t *testing.T) {
	g := gomega.NewWithT(t)

	now := time.Date(2025, 8, 31, 8, 0, 0, 0, time.Local)
	meetings := []Meeting{
		confirmedOn(1, "2025-09-02", "09:00"),
		confirmedOn(2, "2025-09-01", "15:00"),
		confirmedOn(3, "2025-09-01", "09:00"),
	}

	active := SelectActiveConfirmed(meetings, now)
	g.Expect(active).To(gomega.HaveLen(3))
	g.Expect(active[0].ID).To(gomega.Equal(3))
	g.Expect(active[1].ID).To(gomega.Equal(2))
	g.Expect(active[2].ID).To(gomega.Equal(1))
}

func TestSelectActiveConfirmedSkipsUnparseableDates(t *testing.T) {
	g := gomega.NewWithT(t)

	now := time.Date(2025, 8, 31, 8, 0, 0, 0, time.Local)
	meetings := []Meeting{
		{ID: 1, Status: StatusConfirmed, ConfirmedDate: "not-a-date", ConfirmedTimeSlot: "morning"},
	}

	g.Expect(SelectActiveConfirmed(meetings, now)).To(gomega.BeEmpty())
}
