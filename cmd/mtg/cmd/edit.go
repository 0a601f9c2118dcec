package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/core"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a meeting's fields",
	Long: `Edit a meeting. Only the flags you pass change; everything else keeps
its current value. Passing --slot replaces the whole candidate list.
Editing never clears a confirmation — use 'mtg unconfirm' for that.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("name", "n", "", "Invitee name")
	editCmd.Flags().String("notes", "", "Free-form notes")
	editCmd.Flags().StringP("type", "t", "", "Meeting type: online or offline")
	editCmd.Flags().StringP("location", "l", "", "Meeting URL (online) or room info (offline)")
	editCmd.Flags().String("image", "", "Path or URL of an avatar image")
	editCmd.Flags().StringArrayP("slot", "s", nil, "Candidate DATE:SLOT pair (repeatable, replaces the list)")
}

// parseMeetingID resolves a command argument to a meeting id.
func parseMeetingID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid meeting id %q", arg)
	}
	return id, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseMeetingID(args[0])
	if err != nil {
		return err
	}

	collection, store := openCollection()
	meeting, ok := collection.Get(id)
	if !ok {
		return fmt.Errorf("meeting %d not found", id)
	}

	form := core.FormFromMeeting(meeting)
	if cmd.Flags().Changed("name") {
		form.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("notes") {
		form.Notes, _ = cmd.Flags().GetString("notes")
	}
	if cmd.Flags().Changed("location") {
		form.MeetingLocation, _ = cmd.Flags().GetString("location")
	}
	if cmd.Flags().Changed("image") {
		form.Image, _ = cmd.Flags().GetString("image")
	}
	if cmd.Flags().Changed("type") {
		t, _ := cmd.Flags().GetString("type")
		if t != string(core.TypeOnline) && t != string(core.TypeOffline) {
			return fmt.Errorf("unknown meeting type %q (online or offline)", t)
		}
		form.MeetingType = core.MeetingType(t)
	}
	if cmd.Flags().Changed("slot") {
		slots, _ := cmd.Flags().GetStringArray("slot")
		options, err := parseSlotArgs(slots)
		if err != nil {
			return err
		}
		form.PreferredOptions = options
	}

	warnConflicts(form, collection.Meetings(), &meeting)

	updated, err := collection.Update(id, form)
	if err != nil {
		return reportValidation(err)
	}
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	fmt.Printf("Updated meeting [%d] %s\n", updated.ID, updated.Name)
	return nil
}
