package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/util"
)

var upcomingCmd = &cobra.Command{
	Use:     "upcoming",
	Aliases: []string{"up"},
	Short:   "Show confirmed meetings that are still ahead",
	Long: `Show the rolling view of confirmed meetings: future dates, plus today's
meetings until one hour after they start. What's already behind you
stays out of sight.`,
	RunE: runUpcoming,
}

func init() {
	rootCmd.AddCommand(upcomingCmd)
}

func runUpcoming(cmd *cobra.Command, args []string) error {
	collection, _ := openCollection()
	now := time.Now()
	active := core.SelectActiveConfirmed(collection.Meetings(), now)

	fmt.Println("📅 Upcoming confirmed meetings:")
	fmt.Println("─────────────────────────────────────────────────")

	if len(active) == 0 {
		fmt.Println("Nothing confirmed ahead. Enjoy the quiet.")
		return nil
	}

	for _, m := range active {
		fmt.Println()
		fmt.Printf("  [%d] %s (%s)\n", m.ID, m.Name, m.MeetingType)
		when := util.FormatDate(m.ConfirmedDate)
		if m.ConfirmedStartTime != "" {
			when += ", " + m.ConfirmedStartTime
			if m.ConfirmedEndTime != "" {
				when += " - " + m.ConfirmedEndTime
			}
		} else {
			when += ", " + core.SlotLabel(m.ConfirmedTimeSlot)
		}
		fmt.Printf("      🕐 %s\n", when)
		if m.MeetingLocation != "" {
			fmt.Printf("      📍 %s\n", m.MeetingLocation)
		}
	}

	fmt.Println()
	fmt.Println("─────────────────────────────────────────────────")
	fmt.Printf("Total: %d meetings\n", len(active))
	return nil
}
