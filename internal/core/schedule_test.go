package core

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestBuildSummaryGroupsByDate(t *testing.T) {
	g := gomega.NewWithT(t)

	meetings := []Meeting{
		{
			ID: 1, Name: "Taro", Status: StatusPending,
			PreferredOptions: []PreferredOption{
				{Date: "2025-09-02", TimeSlot: "morning"},
				{Date: "2025-09-01", TimeSlot: "14-15"},
			},
		},
		{
			ID: 2, Name: "Hanako", Status: StatusPending, Notes: "bring slides",
			PreferredOptions: []PreferredOption{
				{Date: "2025-09-01", TimeSlot: "morning"},
			},
		},
	}

	summary := BuildSummary(meetings)
	g.Expect(SummaryDates(summary)).To(gomega.Equal([]string{"2025-09-01", "2025-09-02"}))

	first := summary["2025-09-01"]
	g.Expect(first).To(gomega.HaveLen(2))
	// meeting order is preserved within a date
	g.Expect(first[0].MeetingName).To(gomega.Equal("Taro"))
	g.Expect(first[0].Priority).To(gomega.Equal(2))
	g.Expect(first[1].MeetingName).To(gomega.Equal("Hanako"))
	g.Expect(first[1].Priority).To(gomega.Equal(1))
	g.Expect(first[1].Notes).To(gomega.Equal("bring slides"))

	second := summary["2025-09-02"]
	g.Expect(second).To(gomega.HaveLen(1))
	g.Expect(second[0].TimeSlot).To(gomega.Equal("morning"))
}

func TestBuildSummarySkipsConfirmedAndIncomplete(t *testing.T) {
	g := gomega.NewWithT(t)

	meetings := []Meeting{
		{
			ID: 1, Name: "confirmed", Status: StatusConfirmed,
			ConfirmedDate: "2025-09-01", ConfirmedTimeSlot: "morning",
			PreferredOptions: []PreferredOption{
				{Date: "2025-09-01", TimeSlot: "morning"},
			},
		},
		{
			ID: 2, Name: "half-filled", Status: StatusPending,
			PreferredOptions: []PreferredOption{
				{Date: "2025-09-03"},
				{TimeSlot: "morning"},
				{Date: "2025-09-04", TimeSlot: "evening"},
			},
		},
	}

	summary := BuildSummary(meetings)
	g.Expect(summary).To(gomega.HaveLen(1))

	rows := summary["2025-09-04"]
	g.Expect(rows).To(gomega.HaveLen(1))
	g.Expect(rows[0].MeetingName).To(gomega.Equal("half-filled"))
	g.Expect(rows[0].Priority).To(gomega.Equal(3))
}

func TestBuildSummaryEmpty(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(BuildSummary(nil)).To(gomega.BeEmpty())
	g.Expect(SummaryDates(BuildSummary(nil))).To(gomega.BeEmpty())
}
