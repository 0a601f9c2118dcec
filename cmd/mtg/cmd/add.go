package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/util"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meeting with candidate slots",
	Long: `Add a meeting. Candidate slots are given as DATE:SLOT pairs, highest
priority first, e.g.:

  mtg add --name "Taro" --slot 2025-09-01:morning --slot 2025-09-02:10-11

Slots can be coarse (allday, morning, afternoon, evening) or hourly
(10-11 through 18-19). Conflicts with other meetings' candidates are
reported as warnings, not errors — double-booking a candidate is allowed,
just probably unwise.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("name", "n", "", "Invitee name (required)")
	addCmd.Flags().String("notes", "", "Free-form notes")
	addCmd.Flags().StringP("type", "t", "", "Meeting type: online or offline")
	addCmd.Flags().StringP("location", "l", "", "Meeting URL (online) or room info (offline)")
	addCmd.Flags().String("image", "", "Path or URL of an avatar image to attach")
	addCmd.Flags().StringArrayP("slot", "s", nil, "Candidate DATE:SLOT pair (repeatable, up to 5)")
}

// parseSlotArgs turns DATE:SLOT argument pairs into form option rows.
func parseSlotArgs(args []string) ([]core.PreferredOption, error) {
	if len(args) > core.MaxPreferredOptions {
		return nil, fmt.Errorf("at most %d candidate slots are allowed, got %d", core.MaxPreferredOptions, len(args))
	}
	options := make([]core.PreferredOption, core.MaxPreferredOptions)
	for i, arg := range args {
		date, slot, found := strings.Cut(arg, ":")
		if !found {
			return nil, fmt.Errorf("slot %q: expected DATE:SLOT, e.g. 2025-09-01:morning", arg)
		}
		// dates are compared as strings everywhere, so a loosely written
		// date like 2025-9-1 would never match its zero-padded form
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("slot %q: date must be YYYY-MM-DD", arg)
		}
		if !core.ValidSlot(slot) {
			return nil, fmt.Errorf("slot %q: unknown time slot %q (see 'mtg add --help')", arg, slot)
		}
		options[i] = core.PreferredOption{Date: date, TimeSlot: slot}
	}
	return options, nil
}

// reportValidation prints every violated field so the user can fix them
// all in one pass.
func reportValidation(err error) error {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		fmt.Println("The meeting was not saved:")
		for _, f := range verr.Fields {
			fmt.Printf("  ✗ %s\n", f.Message)
		}
		return errors.New("validation failed")
	}
	return err
}

// warnConflicts flags every candidate slot that collides with another
// meeting's candidates or with a sibling slot on the same form.
func warnConflicts(form core.FormData, meetings []core.Meeting, editing *core.Meeting) {
	for i, o := range form.PreferredOptions {
		if !o.Complete() {
			continue
		}
		if core.IsOccupied(o.Date, o.TimeSlot, meetings, editing, form, i) {
			fmt.Printf("  ⚠️  candidate %d (%s, %s) overlaps an existing candidate slot\n",
				i+1, util.FormatDateShort(o.Date), core.SlotLabel(o.TimeSlot))
		}
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	slots, _ := cmd.Flags().GetStringArray("slot")
	options, err := parseSlotArgs(slots)
	if err != nil {
		return err
	}

	meetingType := viper.GetString("meeting_type")
	if t, _ := cmd.Flags().GetString("type"); t != "" {
		meetingType = t
	}
	if meetingType != string(core.TypeOnline) && meetingType != string(core.TypeOffline) {
		return fmt.Errorf("unknown meeting type %q (online or offline)", meetingType)
	}

	form := core.NewFormData()
	form.Name, _ = cmd.Flags().GetString("name")
	form.Notes, _ = cmd.Flags().GetString("notes")
	form.Image, _ = cmd.Flags().GetString("image")
	form.MeetingLocation, _ = cmd.Flags().GetString("location")
	form.MeetingType = core.MeetingType(meetingType)
	form.PreferredOptions = options

	collection, store := openCollection()
	warnConflicts(form, collection.Meetings(), nil)

	meeting, err := collection.Add(form)
	if err != nil {
		return reportValidation(err)
	}
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	fmt.Printf("Added meeting [%d] %s\n", meeting.ID, meeting.Name)
	return nil
}
