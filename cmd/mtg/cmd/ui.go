package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive TUI",
	Long:  `Launch an interactive terminal user interface for browsing the candidate-slot summary.`,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The loader re-reads the data file so 'r' picks up external edits.
	load := func() ([]core.Meeting, error) {
		collection, _ := openCollection()
		return collection.Meetings(), nil
	}

	m := tui.NewModel(load)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
