package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/torisaki/mtg/internal/ics"
	"github.com/torisaki/mtg/internal/log"
	"github.com/torisaki/mtg/internal/util"
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export confirmed meetings as a calendar (.ics) file",
	Long: `Export a confirmed meeting as an .ics file, with reminder alarms at the
configured minutes-before offsets (default 60 and 30).

With an id, exports that one meeting; with --all, every confirmed meeting
lands in a single file. A meeting needs a confirmed date plus start and
end times to be exportable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Bool("all", false, "Export every confirmed meeting into one file")
	exportCmd.Flags().StringP("out", "o", "", "Output directory (default from config export_dir)")
}

func exportDir(cmd *cobra.Command) string {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return expandPath(out)
	}
	return expandPath(viper.GetString("export_dir"))
}

func writeCalendar(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write calendar file: %w", err)
	}
	return path, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	if all == (len(args) == 1) {
		return errors.New("pass a meeting id or --all, but not both")
	}

	collection, _ := openCollection()
	now := time.Now()
	reminders := reminderMinutes()

	if all {
		meetings := collection.Meetings()
		content, err := ics.EncodeAll(meetings, reminders, now)
		if errors.Is(err, ics.ErrNoConfirmed) {
			fmt.Println("⚠️  No confirmed meetings with start and end times — nothing to export.")
			return nil
		}
		if err != nil {
			return err
		}
		path, err := writeCalendar(exportDir(cmd), ics.BatchFilename(meetings), content)
		if err != nil {
			return err
		}
		log.Info("batch calendar exported", "path", path)
		fmt.Printf("Exported confirmed meetings to %s\n", util.MakeHyperlink(path, path))
		return nil
	}

	id, err := parseMeetingID(args[0])
	if err != nil {
		return err
	}
	meeting, ok := collection.Get(id)
	if !ok {
		return fmt.Errorf("meeting %d not found", id)
	}

	content, ok, err := ics.Encode(meeting, reminders, now)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("⚠️  Meeting [%d] %s has no confirmed date and times — confirm it with --start/--end first.\n", meeting.ID, meeting.Name)
		return nil
	}
	path, err := writeCalendar(exportDir(cmd), ics.Filename(meeting), content)
	if err != nil {
		return err
	}
	log.Info("calendar exported", "path", path, "meeting", meeting.ID)
	fmt.Printf("Exported [%d] %s to %s\n", meeting.ID, meeting.Name, util.MakeHyperlink(path, path))
	return nil
}
