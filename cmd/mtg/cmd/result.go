package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resultCmd = &cobra.Command{
	Use:   "result <id> <text>...",
	Short: "Record post-meeting notes",
	Long:  `Record how a meeting went. Independent of scheduling state — works on pending and confirmed meetings alike.`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runResult,
}

func init() {
	rootCmd.AddCommand(resultCmd)
}

func runResult(cmd *cobra.Command, args []string) error {
	id, err := parseMeetingID(args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")

	collection, store := openCollection()
	meeting, err := collection.SetResult(id, text)
	if err != nil {
		return err
	}
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	fmt.Printf("Recorded result for [%d] %s\n", meeting.ID, meeting.Name)
	return nil
}
