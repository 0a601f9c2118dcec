package core

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestSlotVocabulary(t *testing.T) {
	g := gomega.NewWithT(t)

	// 1 all-day + 3 coarse + 9 hourly + 2 separators
	g.Expect(Slots).To(gomega.HaveLen(15))

	selectable := 0
	for _, s := range Slots {
		if s.Disabled {
			g.Expect(ValidSlot(s.Value)).To(gomega.BeFalse(), "separator %q must not be selectable", s.Value)
			continue
		}
		selectable++
		g.Expect(ValidSlot(s.Value)).To(gomega.BeTrue(), "slot %q must be selectable", s.Value)
	}
	g.Expect(selectable).To(gomega.Equal(13))

	g.Expect(SlotLabel("morning")).To(gomega.Equal("10:00 ~ 12:00"))
	g.Expect(SlotLabel("10-11")).To(gomega.Equal("10:00 ~ 11:00"))
	// unknown values render as-is
	g.Expect(SlotLabel("brunch")).To(gomega.Equal("brunch"))
}

func TestHourRange(t *testing.T) {
	g := gomega.NewWithT(t)

	start, end, ok := HourRange("morning")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(start).To(gomega.Equal(10))
	g.Expect(end).To(gomega.Equal(12))

	start, end, ok = HourRange("allday")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(start).To(gomega.Equal(0))
	g.Expect(end).To(gomega.Equal(24))

	start, end, ok = HourRange("18-19")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(start).To(gomega.Equal(18))
	g.Expect(end).To(gomega.Equal(19))

	_, _, ok = HourRange("sep-hourly")
	g.Expect(ok).To(gomega.BeFalse())
	_, _, ok = HourRange("")
	g.Expect(ok).To(gomega.BeFalse())
}

func TestOverlaps(t *testing.T) {
	g := gomega.NewWithT(t)

	cases := []struct {
		a, b string
		want bool
	}{
		{"allday", "10-11", true},
		{"14-15", "allday", true},
		{"allday", "allday", true},
		{"morning", "morning", true},

		// adjacent hourly slots share only the boundary instant
		{"10-11", "11-12", false},
		{"11-12", "10-11", false},
		{"10-11", "12-13", false},

		// coarse vs hourly
		{"morning", "10-11", true},
		{"morning", "11-12", true},
		{"morning", "12-13", false},
		{"afternoon", "13-14", true},
		{"afternoon", "15-16", true},
		{"afternoon", "16-17", false},
		{"evening", "17-18", true},
		{"evening", "16-17", false},
		{"evening", "18-19", true},

		// coarse vs coarse
		{"morning", "afternoon", false},
		{"afternoon", "evening", false},

		// unresolvable labels never collide (except with themselves)
		{"brunch", "morning", false},
		{"morning", "brunch", false},
		{"brunch", "brunch", true},
	}

	for _, c := range cases {
		g.Expect(Overlaps(c.a, c.b)).To(gomega.Equal(c.want), "Overlaps(%q, %q)", c.a, c.b)
	}
}
