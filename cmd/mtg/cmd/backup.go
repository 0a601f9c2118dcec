package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/backup"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/log"
	"github.com/torisaki/mtg/internal/util"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore the whole meeting collection",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the collection to a versioned JSON backup file",
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace the collection from a backup file",
	Long: `Restore the collection from a backup file. Records missing a numeric id,
a name, or a candidate list are dropped; everything else replaces the
current collection. The current collection is left untouched if the file
does not look like a backup at all.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupImport,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)

	backupExportCmd.Flags().StringP("out", "o", ".", "Output directory")
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	collection, _ := openCollection()
	now := time.Now()

	data, err := backup.Export(collection.Meetings(), now)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("out")
	dir = expandPath(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, backup.Filename(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	log.Info("backup written", "path", path, "meetings", collection.Len())
	fmt.Printf("Backed up %d meetings to %s\n", collection.Len(), util.MakeHyperlink(path, path))
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}

	meetings, err := backup.Import(data)
	if err != nil {
		return err
	}

	collection := core.NewCollection(meetings)
	store := openStore()
	if err := saveCollection(collection, store); err != nil {
		return err
	}

	log.Info("backup restored", "file", args[0], "meetings", len(meetings))
	fmt.Printf("Restored %d meetings from %s\n", len(meetings), args[0])
	return nil
}
