package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/ics"
	"github.com/torisaki/mtg/internal/log"
)

var importCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Import meetings from a calendar (.ics) file",
	Long: `Import events from an .ics file as meetings. Each event becomes a new
meeting record; events that parse with a date, start and end time come in
confirmed, the rest come in pending. Events without a summary are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read calendar file: %w", err)
	}

	parsed := ics.Parse(string(data))
	if len(parsed) == 0 {
		return fmt.Errorf("no usable events found in %s", args[0])
	}

	collection, store := openCollection()
	added := collection.ImportMeetings(parsed)
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	log.Info("calendar imported", "file", args[0], "events", len(added))
	fmt.Printf("Imported %d meetings:\n", len(added))
	for _, m := range added {
		status := "pending"
		if m.Confirmed() {
			status = "confirmed"
		}
		fmt.Printf("  [%d] %s (%s)\n", m.ID, m.Name, status)
	}
	return nil
}
