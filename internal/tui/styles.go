package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	freeColor    = lipgloss.Color("#10B981") // Green
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	accentColor  = lipgloss.Color("#F59E0B") // Amber
	busyColor    = lipgloss.Color("#EF4444") // Red
	fgColor      = lipgloss.Color("#F9FAFB") // Light

	// Layout styles
	AppStyle    = lipgloss.NewStyle().Padding(1, 2)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)

	// List panel (left side)
	ListPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 1)

	// Detail panel (right side)
	DetailPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primaryColor).Padding(1, 2)

	// List item styles
	DateHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	SelectedItemStyle = lipgloss.NewStyle().Background(primaryColor).Foreground(fgColor).Bold(true).Padding(0, 1)
	NormalItemStyle   = lipgloss.NewStyle().Foreground(fgColor).Padding(0, 1)
	SlotStyle         = lipgloss.NewStyle().Foreground(freeColor).Width(16)
	PriorityStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	ConflictStyle     = lipgloss.NewStyle().Foreground(busyColor).Bold(true)

	// Detail panel styles
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)
	LabelStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Width(11)
	ValueStyle = lipgloss.NewStyle().Foreground(fgColor)

	// Help bar
	HelpStyle    = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
)
