package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/util"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm <id> <date> <slot>",
	Short: "Finalize a meeting's date and time slot",
	Long: `Finalize a meeting. Pass the chosen date and slot label, and optionally
the exact start/end times (needed for calendar export):

  mtg confirm 3 2025-09-01 morning --start 10:30 --end 11:30`,
	Args: cobra.ExactArgs(3),
	RunE: runConfirm,
}

var unconfirmCmd = &cobra.Command{
	Use:   "unconfirm <id>",
	Short: "Clear a meeting's confirmation and return it to pending",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnconfirm,
}

func init() {
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(unconfirmCmd)

	confirmCmd.Flags().String("start", "", "Start time of day (HH:MM)")
	confirmCmd.Flags().String("end", "", "End time of day (HH:MM)")
}

func runConfirm(cmd *cobra.Command, args []string) error {
	id, err := parseMeetingID(args[0])
	if err != nil {
		return err
	}
	date, slot := args[1], args[2]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD", date)
	}
	if !core.ValidSlot(slot) {
		return fmt.Errorf("unknown time slot %q", slot)
	}
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	collection, store := openCollection()
	meeting, err := collection.Confirm(id, date, slot, start, end)
	if err != nil {
		return err
	}
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	when := fmt.Sprintf("%s (%s)", util.FormatDate(date), core.SlotLabel(slot))
	if start != "" && end != "" {
		when += fmt.Sprintf(", %s - %s", start, end)
	}
	fmt.Printf("Confirmed [%d] %s: %s\n", meeting.ID, meeting.Name, when)
	if start == "" || end == "" {
		fmt.Println("Tip: set --start and --end to make this meeting exportable as a calendar file")
	}
	return nil
}

func runUnconfirm(cmd *cobra.Command, args []string) error {
	id, err := parseMeetingID(args[0])
	if err != nil {
		return err
	}

	collection, store := openCollection()
	meeting, err := collection.ResetConfirmation(id)
	if err != nil {
		return err
	}
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	fmt.Printf("Meeting [%d] %s is pending again\n", meeting.ID, meeting.Name)
	return nil
}
