package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/torisaki/mtg/internal/core"
	"github.com/torisaki/mtg/internal/util"
)

// KeyMap defines the keybindings for the TUI
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Refresh    key.Binding
	Quit       key.Binding
	Help       key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "scroll down"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// Loader fetches a fresh snapshot of the meeting collection.
type Loader func() ([]core.Meeting, error)

// row is one rendered line of the list panel: either a date header or a
// candidate-slot entry.
type row struct {
	header   bool
	date     string
	entry    core.Schedule
	conflict bool
}

// Model is the Bubble Tea model for the schedule browser.
type Model struct {
	load          Loader
	meetings      []core.Meeting
	rows          []row
	selectedIdx   int
	width         int
	height        int
	listWidth     int
	detailWidth   int
	contentHeight int
	keys          KeyMap
	err           error
	listView      viewport.Model
	detailView    viewport.Model
	viewportReady bool
	showHelp      bool
}

// NewModel creates a new schedule browser model.
func NewModel(load Loader) Model {
	return Model{
		load: load,
		keys: DefaultKeyMap,
	}
}

// buildRows flattens the occupancy summary into list rows, marking
// entries whose slot overlaps another candidate on the same date.
func buildRows(meetings []core.Meeting) []row {
	summary := core.BuildSummary(meetings)
	var rows []row
	for _, date := range core.SummaryDates(summary) {
		rows = append(rows, row{header: true, date: date})
		entries := summary[date]
		for i, entry := range entries {
			conflict := false
			for j, other := range entries {
				if i != j && core.Overlaps(entry.TimeSlot, other.TimeSlot) {
					conflict = true
					break
				}
			}
			rows = append(rows, row{date: date, entry: entry, conflict: conflict})
		}
	}
	return rows
}

// firstEntryIdx returns the first selectable (non-header) row.
func (m *Model) firstEntryIdx() int {
	for i, r := range m.rows {
		if !r.header {
			return i
		}
	}
	return 0
}

// Messages
type meetingsLoadedMsg struct {
	meetings []core.Meeting
	err      error
}

func (m Model) loadMeetings() tea.Cmd {
	return func() tea.Msg {
		meetings, err := m.load()
		return meetingsLoadedMsg{meetings: meetings, err: err}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.loadMeetings()
}

// calculateLayout calculates responsive layout dimensions
func (m *Model) calculateLayout() {
	height := m.height
	if height < 10 {
		height = 10
	}

	// Header, help bar, padding
	m.contentHeight = height - 6
	if m.contentHeight < 5 {
		m.contentHeight = 5
	}

	m.listWidth = m.width * 45 / 100
	if m.listWidth < 30 {
		m.listWidth = 30
	}
	m.detailWidth = m.width - m.listWidth - 5
	if m.detailWidth < 30 {
		m.detailWidth = 30
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.calculateLayout()

		listW, listH := m.listWidth-4, m.contentHeight-2
		detailW, detailH := m.detailWidth-6, m.contentHeight-2
		if listW < 10 {
			listW = 10
		}
		if detailW < 10 {
			detailW = 10
		}
		if listH < 1 {
			listH = 1
		}
		if detailH < 1 {
			detailH = 1
		}

		if !m.viewportReady {
			m.listView = viewport.New(listW, listH)
			m.detailView = viewport.New(detailW, detailH)
			m.viewportReady = true
		} else {
			m.listView.Width = listW
			m.listView.Height = listH
			m.detailView.Width = detailW
			m.detailView.Height = detailH
		}
		m.updateListContent()
		m.updateDetailContent()
		return m, nil

	case meetingsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.meetings = msg.meetings
		m.rows = buildRows(msg.meetings)
		m.selectedIdx = m.firstEntryIdx()
		m.updateListContent()
		m.updateDetailContent()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadMeetings()

		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1)
			return m, nil

		case key.Matches(msg, m.keys.ScrollUp):
			m.detailView.ViewUp()
			return m, nil

		case key.Matches(msg, m.keys.ScrollDown):
			m.detailView.ViewDown()
			return m, nil
		}
	}

	return m, nil
}

// moveSelection steps over date headers so the cursor only lands on
// candidate entries.
func (m *Model) moveSelection(delta int) {
	idx := m.selectedIdx
	for {
		idx += delta
		if idx < 0 || idx >= len(m.rows) {
			return
		}
		if !m.rows[idx].header {
			break
		}
	}
	m.selectedIdx = idx
	m.updateListContent()
	m.scrollListToSelection()
	m.updateDetailContent()
	m.detailView.GotoTop()
}

func (m *Model) scrollListToSelection() {
	if !m.viewportReady {
		return
	}
	top := m.listView.YOffset
	bottom := top + m.listView.Height - 1
	if m.selectedIdx < top {
		m.listView.SetYOffset(m.selectedIdx)
	} else if m.selectedIdx > bottom {
		m.listView.SetYOffset(m.selectedIdx - m.listView.Height + 1)
	}
}

func (m *Model) updateListContent() {
	if !m.viewportReady {
		return
	}
	var b strings.Builder
	for i, r := range m.rows {
		if r.header {
			b.WriteString(DateHeaderStyle.Render(util.FormatDate(r.date)))
			b.WriteString("\n")
			continue
		}
		mark := "  "
		if r.conflict {
			mark = ConflictStyle.Render("⚠ ")
		}
		line := fmt.Sprintf("%s%s %s %s",
			mark,
			SlotStyle.Render(core.SlotLabel(r.entry.TimeSlot)),
			r.entry.MeetingName,
			PriorityStyle.Render(fmt.Sprintf("#%d", r.entry.Priority)),
		)
		line = ansi.Truncate(line, m.listView.Width, "…")
		if i == m.selectedIdx {
			line = SelectedItemStyle.Render(ansi.Strip(line))
		} else {
			line = NormalItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(ValueStyle.Render("No open candidates."))
	}
	m.listView.SetContent(b.String())
}

func (m *Model) updateDetailContent() {
	if !m.viewportReady {
		return
	}
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.rows) || m.rows[m.selectedIdx].header {
		m.detailView.SetContent("")
		return
	}
	r := m.rows[m.selectedIdx]

	var b strings.Builder
	b.WriteString(TitleStyle.Render(r.entry.MeetingName))
	b.WriteString("\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(LabelStyle.Render(label))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	writeField("Date", util.FormatDate(r.date))
	writeField("Slot", core.SlotLabel(r.entry.TimeSlot))
	writeField("Priority", fmt.Sprintf("choice #%d", r.entry.Priority))
	writeField("Type", string(r.entry.MeetingType))
	writeField("Location", r.entry.MeetingLocation)
	if r.conflict {
		b.WriteString(ConflictStyle.Render("⚠ overlaps another candidate on this date"))
		b.WriteString("\n")
	}
	if r.entry.Notes != "" {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Notes"))
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render(r.entry.Notes))
		b.WriteString("\n")
	}

	m.detailView.SetContent(b.String())
}

// View renders the TUI
func (m Model) View() string {
	if !m.viewportReady {
		return "Loading…"
	}
	if m.err != nil {
		return AppStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.showHelp {
		return AppStyle.Render(m.helpView())
	}

	header := HeaderStyle.Render("mtg — open candidate slots")
	list := ListPanelStyle.Width(m.listWidth).Height(m.contentHeight).Render(m.listView.View())
	detail := DetailPanelStyle.Width(m.detailWidth).Height(m.contentHeight).Render(m.detailView.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)

	help := HelpStyle.Render(fmt.Sprintf("%s move  %s scroll  %s refresh  %s help  %s quit",
		HelpKeyStyle.Render("↑/↓"),
		HelpKeyStyle.Render("ctrl+u/d"),
		HelpKeyStyle.Render("r"),
		HelpKeyStyle.Render("?"),
		HelpKeyStyle.Render("q"),
	))

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, panels, help))
}

func (m Model) helpView() string {
	lines := []string{
		HeaderStyle.Render("Keybindings"),
		"",
		fmt.Sprintf("  %s  move between candidate slots", HelpKeyStyle.Render("↑/↓ or j/k")),
		fmt.Sprintf("  %s  scroll the detail panel", HelpKeyStyle.Render("ctrl+u / ctrl+d")),
		fmt.Sprintf("  %s  reload the collection from disk", HelpKeyStyle.Render("r")),
		fmt.Sprintf("  %s  quit", HelpKeyStyle.Render("q")),
		"",
		HelpStyle.Render("Press any key to close"),
	}
	return strings.Join(lines, "\n")
}
