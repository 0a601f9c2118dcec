package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write the config file",
	Long: `Read and write settings in the config file directly, without opening
an editor. Settings: reminders, export_dir, meeting_type, data_file.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show the current configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one setting to the config file",
	Long: `Write one setting to the config file.

Examples:
  mtg config set reminders 60,30
  mtg config set export_dir ~/calendars
  mtg config set meeting_type online`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(configPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys are the settings the set command accepts.
var configKeys = map[string]bool{
	"reminders":    true,
	"export_dir":   true,
	"meeting_type": true,
	"data_file":    true,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	config, err := readConfigFile()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if len(args) == 1 {
		val, ok := config[args[0]]
		if !ok {
			fmt.Printf("%s is not set (using the built-in default)\n", args[0])
			return nil
		}
		fmt.Printf("%s: %v\n", args[0], val)
		return nil
	}

	if len(config) == 0 {
		fmt.Println("No settings in the config file; everything is at its default.")
		return nil
	}

	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %v\n", k, config[k])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	if !configKeys[key] {
		return fmt.Errorf("unknown setting %q", key)
	}

	var value interface{}
	switch key {
	case "reminders":
		minutes, err := parseReminderList(raw)
		if err != nil {
			return err
		}
		value = minutes
	case "meeting_type":
		if raw != "online" && raw != "offline" {
			return fmt.Errorf("meeting_type must be online or offline, got %q", raw)
		}
		value = raw
	default:
		value = raw
	}

	config, err := readConfigFile()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	config[key] = value
	if err := writeConfigFile(config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ %s set to %v\n", key, value)
	return nil
}

// parseReminderList parses a comma-separated minute list like "60,30".
func parseReminderList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	minutes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("reminders must be positive minute counts, got %q", p)
		}
		minutes = append(minutes, n)
	}
	return minutes, nil
}

// Config file manipulation

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mtg", "config.yaml")
}

func readConfigFile() (map[string]interface{}, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]interface{}), nil
		}
		return nil, err
	}

	var config map[string]interface{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if config == nil {
		config = make(map[string]interface{})
	}
	return config, nil
}

func writeConfigFile(config map[string]interface{}) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
