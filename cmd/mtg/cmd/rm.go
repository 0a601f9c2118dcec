package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/core"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a meeting",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseMeetingID(args[0])
	if err != nil {
		return err
	}

	collection, store := openCollection()
	meeting, ok := collection.Get(id)
	if !ok {
		return fmt.Errorf("meeting %d not found", id)
	}
	if err := collection.Delete(id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("meeting %d not found", id)
		}
		return err
	}
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	fmt.Printf("Deleted meeting [%d] %s\n", meeting.ID, meeting.Name)
	return nil
}
