package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/log"
	"github.com/torisaki/mtg/internal/storage"
	"github.com/torisaki/mtg/internal/util"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mtg",
	Short: "A terminal meeting scheduler for people who'd rather not juggle candidate dates by hand",
	Long: `mtg — short for "meeting", and the sigh you let out while scheduling one.

Collect candidate interview/meeting slots per person, spot conflicts between
their preferred time windows, confirm a final date, and export the result as
a calendar file. Everything lives in one local JSON file; no accounts, no
servers, no sync.`,
	RunE: runList,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mtg/config.yaml)")
	rootCmd.PersistentFlags().String("data-file", "", "meeting collection file (default is $HOME/.config/mtg/meetings.json)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log what's happening under the hood")

	viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data-file"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "mtg")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("MTG")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("reminders", []int{60, 30})
	viper.SetDefault("export_dir", ".")
	viper.SetDefault("meeting_type", "offline")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if viper.GetBool("verbose") {
		log.SetLevel(log.LevelDebug)
	}
}

// dataFilePath resolves the collection file from flag/config, defaulting
// to the config directory.
func dataFilePath() string {
	if path := viper.GetString("data_file"); path != "" {
		return expandPath(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "meetings.json"
	}
	return filepath.Join(home, ".config", "mtg", "meetings.json")
}

// openStore wraps the configured collection file without reading it.
func openStore() *storage.Store {
	return storage.New(dataFilePath())
}

// openCollection loads the persisted collection. A corrupt file is
// reported and treated as empty rather than fatal.
func openCollection() (*core.Collection, *storage.Store) {
	store := openStore()
	meetings, err := store.Load()
	if err != nil {
		log.Error("could not read saved meetings, starting empty", err, "path", store.Path())
		fmt.Fprintf(os.Stderr, "Warning: %v — starting with an empty collection\n", err)
		meetings = nil
	}
	return core.NewCollection(meetings), store
}

// saveCollection writes the collection back after a mutation.
func saveCollection(collection *core.Collection, store *storage.Store) error {
	if err := store.Save(collection.Meetings()); err != nil {
		return fmt.Errorf("failed to save meetings: %w", err)
	}
	log.Debug("collection saved", "path", store.Path(), "meetings", collection.Len())
	return nil
}

// reminderMinutes reads the configured minutes-before-start offsets.
func reminderMinutes() []int {
	return viper.GetIntSlice("reminders")
}

func runList(cmd *cobra.Command, args []string) error {
	collection, _ := openCollection()
	meetings := collection.Meetings()

	fmt.Println("📋 Meetings:")
	fmt.Println("─────────────────────────────────────────────────")

	if len(meetings) == 0 {
		fmt.Println("No meetings yet. Add one with 'mtg add'.")
		return nil
	}

	for _, m := range meetings {
		printMeeting(m)
	}

	fmt.Println("─────────────────────────────────────────────────")
	fmt.Printf("Total: %d meetings\n", len(meetings))
	return nil
}

func printMeeting(m core.Meeting) {
	fmt.Println()
	marker := "⏳"
	if m.Status == core.StatusConfirmed {
		marker = "✅"
	}
	fmt.Printf("  %s [%d] %s (%s)\n", marker, m.ID, m.Name, m.MeetingType)

	if m.Status == core.StatusConfirmed {
		when := util.FormatDate(m.ConfirmedDate)
		if m.ConfirmedStartTime != "" && m.ConfirmedEndTime != "" {
			when += fmt.Sprintf(", %s - %s", m.ConfirmedStartTime, m.ConfirmedEndTime)
		} else {
			when += ", " + core.SlotLabel(m.ConfirmedTimeSlot)
		}
		fmt.Printf("     📅 Confirmed:  %s\n", when)
	}

	for i, o := range m.PreferredOptions {
		if !o.Complete() {
			continue
		}
		fmt.Printf("     %d. %s, %s\n", i+1, util.FormatDateShort(o.Date), core.SlotLabel(o.TimeSlot))
	}

	if m.MeetingLocation != "" {
		fmt.Printf("     📍 Location:   %s\n", m.MeetingLocation)
	}
	if m.Notes != "" {
		fmt.Printf("     📝 Notes:      %s\n", util.TruncateText(strings.ReplaceAll(m.Notes, "\n", " "), 70))
	}
	if m.MeetingResult != "" {
		fmt.Printf("     🗒️  Result:     %s\n", util.TruncateText(strings.ReplaceAll(m.MeetingResult, "\n", " "), 70))
	}
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
