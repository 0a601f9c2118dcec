package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/util"
)

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched"},
	Short:   "Show open candidate slots grouped by date",
	Long: `Show the occupancy overview: every pending meeting's candidate slots,
grouped by date. Confirmed meetings no longer appear here — their
remaining candidates stopped being open the moment a slot was finalized.`,
	RunE: runSchedule,
}

var checkCmd = &cobra.Command{
	Use:   "check <date> <slot>",
	Short: "Check whether a (date, slot) pair is already taken",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(checkCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	collection, _ := openCollection()
	summary := core.BuildSummary(collection.Meetings())

	fmt.Println("🗓️  Open candidate slots:")
	fmt.Println("─────────────────────────────────────────────────")

	dates := core.SummaryDates(summary)
	if len(dates) == 0 {
		fmt.Println("No open candidates. Everything is either confirmed or empty.")
		return nil
	}

	total := 0
	for _, date := range dates {
		fmt.Printf("\n  %s\n", util.FormatDate(date))
		for _, row := range summary[date] {
			fmt.Printf("    • %-16s %s (choice #%d)\n", core.SlotLabel(row.TimeSlot), row.MeetingName, row.Priority)
			total++
		}
	}

	fmt.Println()
	fmt.Println("─────────────────────────────────────────────────")
	fmt.Printf("Total: %d candidate slots on %d dates\n", total, len(dates))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	date, slot := args[0], args[1]
	if !core.ValidSlot(slot) {
		return fmt.Errorf("unknown time slot %q", slot)
	}

	collection, _ := openCollection()
	occupied := core.IsOccupied(date, slot, collection.Meetings(), nil, core.NewFormData(), -1)

	if occupied {
		fmt.Printf("⛔ %s %s is taken\n", util.FormatDate(date), core.SlotLabel(slot))
	} else {
		fmt.Printf("✅ %s %s is free\n", util.FormatDate(date), core.SlotLabel(slot))
	}
	return nil
}
