package cmd

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/torisaki/mtg/internal/core"
)

func TestParseSlotArgs(t *testing.T) {
	g := gomega.NewWithT(t)

	options, err := parseSlotArgs([]string{"2025-09-01:morning", "2025-09-02:10-11"})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(options).To(gomega.HaveLen(core.MaxPreferredOptions))
	g.Expect(options[0]).To(gomega.Equal(core.PreferredOption{Date: "2025-09-01", TimeSlot: "morning"}))
	g.Expect(options[1]).To(gomega.Equal(core.PreferredOption{Date: "2025-09-02", TimeSlot: "10-11"}))
	g.Expect(options[2].Complete()).To(gomega.BeFalse())
}

func TestParseSlotArgsRejectsBadInput(t *testing.T) {
	g := gomega.NewWithT(t)

	cases := []string{
		"2025-09-01",            // no slot
		"2025-09-01:brunch",     // unknown slot
		"2025-09-01:sep-coarse", // separators are not selectable
		"2025-9-1:morning",      // unpadded date would never match 2025-09-01
		"09/01/2025:morning",    // wrong date format
		"someday:morning",       // not a date
	}
	for _, arg := range cases {
		_, err := parseSlotArgs([]string{arg})
		g.Expect(err).To(gomega.HaveOccurred(), "parseSlotArgs(%q)", arg)
	}

	_, err := parseSlotArgs([]string{
		"2025-09-01:morning", "2025-09-02:morning", "2025-09-03:morning",
		"2025-09-04:morning", "2025-09-05:morning", "2025-09-06:morning",
	})
	g.Expect(err).To(gomega.HaveOccurred(), "more than %d slots", core.MaxPreferredOptions)
}
