package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/googlesky/sentop/internal/model"
)

// ViewMode tracks which view is active.
type ViewMode int

const (
	ViewSensorTable ViewMode = iota
	ViewSensorDetail
)

// SnapshotMsg delivers a new snapshot to the UI.
type SnapshotMsg model.Snapshot

// Controller is implemented by the collector so the UI can retune it.
type Controller interface {
	SetInterval(d time.Duration)
	ResetWindows()
}

// Preset refresh interval steps (sorted fastest→slowest)
var intervalPresets = []time.Duration{
	250 * time.Millisecond,
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
	5 * time.Second,
	10 * time.Second,
}

// Model is the root bubbletea model for sentop.
type Model struct {
	width  int
	height int

	mode     ViewMode
	snapshot model.Snapshot

	table  sensorTable
	detail sensorDetail

	// Help overlay
	showHelp bool

	// Search
	searching   bool
	searchInput textinput.Model

	// Pause
	paused bool

	// Highlighted interface (auto-detected default route)
	activeIface string

	// Refresh interval
	intervalIdx int        // index into intervalPresets
	controller  Controller // callback into the collector

	// Snapshot channel (for tea.Cmd polling)
	snapCh <-chan model.Snapshot
}

// New creates a new UI model.
func New(snapCh <-chan model.Snapshot) Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 64

	return Model{
		table:       newSensorTable(),
		searchInput: ti,
		snapCh:      snapCh,
		intervalIdx: 2, // default 1s (index into intervalPresets)
	}
}

// SetController sets the collector reference for interval and window reset.
func (m *Model) SetController(c Controller) {
	m.controller = c
}

// SetActiveInterface sets the interface highlighted in the header.
func (m *Model) SetActiveInterface(name string) {
	m.activeIface = name
}

// WaitForSnapshot returns a tea.Cmd that waits for the next snapshot.
// Returns tea.Quit if the channel is closed (collector stopped).
func WaitForSnapshot(ch <-chan model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return tea.Quit()
		}
		return SnapshotMsg(snap)
	}
}

func (m Model) Init() tea.Cmd {
	return WaitForSnapshot(m.snapCh)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SnapshotMsg:
		if !m.paused {
			m.snapshot = model.Snapshot(msg)
			m.table.update(m.snapshot.Sensors)

			// If in detail view, check the sensor is still reported
			if m.mode == ViewSensorDetail && m.findSensor(m.detail.id) == nil {
				m.mode = ViewSensorTable
			}
		}
		return m, WaitForSnapshot(m.snapCh)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: ? toggles, any key closes
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// If searching, handle search input
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			if msg.String() == "esc" {
				m.searchInput.SetValue("")
				m.table.filter = ""
				m.table.applyFilterAndSort()
			} else {
				m.table.filter = m.searchInput.Value()
				m.table.applyFilterAndSort()
			}
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.table.filter = m.searchInput.Value()
			m.table.applyFilterAndSort()
			return m, cmd
		}
	}

	action := matchKey(msg)

	// Global actions (work in any mode)
	switch action {
	case keyHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keyPause:
		m.paused = !m.paused
		return m, nil
	case keyResetWindows:
		if m.controller != nil {
			m.controller.ResetWindows()
		}
		return m, nil
	case keyIntervalUp:
		m.changeInterval(-1) // faster = lower index
		return m, nil
	case keyIntervalDown:
		m.changeInterval(1) // slower = higher index
		return m, nil
	}

	switch m.mode {
	case ViewSensorTable:
		switch action {
		case keyQuit:
			return m, tea.Quit
		case keyUp:
			m.table.moveUp()
		case keyDown:
			m.table.moveDown()
		case keyPageUp:
			m.table.pageUp()
		case keyPageDown:
			m.table.pageDown()
		case keyHome:
			m.table.goHome()
		case keyEnd:
			m.table.goEnd()
		case keyEnter:
			if sel := m.table.selected(); sel != nil {
				m.mode = ViewSensorDetail
				m.detail = newSensorDetail(sel.ID)
			}
		case keySortNext:
			m.table.nextSort()
		case keySearch:
			m.searching = true
			m.searchInput.Focus()
			return m, m.searchInput.Cursor.BlinkCmd()
		}

	case ViewSensorDetail:
		switch action {
		case keyQuit:
			return m, tea.Quit
		case keyEsc:
			m.mode = ViewSensorTable
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.mode == ViewSensorTable {
				m.table.moveUp()
			}
		case tea.MouseButtonWheelDown:
			if m.mode == ViewSensorTable {
				m.table.moveDown()
			}
		case tea.MouseButtonLeft:
			return m.handleMouseClick(msg)
		}
	}

	return m, nil
}

func (m Model) handleMouseClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ViewSensorTable {
		return m, nil
	}

	header := renderHeader(m.snapshot, m.width, m.paused, m.activeIface)
	headerHeight := strings.Count(header, "\n") + 1

	// row 0 of the content is the column header, rows 1+ are sensors
	contentY := msg.Y - headerHeight
	if contentY < 1 {
		return m, nil
	}
	rowIdx := contentY - 1 + m.table.offset
	if rowIdx >= 0 && rowIdx < len(m.table.filtered) {
		if rowIdx == m.table.cursor {
			// Second click on the selection opens the detail view
			if sel := m.table.selected(); sel != nil {
				m.mode = ViewSensorDetail
				m.detail = newSensorDetail(sel.ID)
			}
		} else {
			m.table.cursor = rowIdx
		}
	}

	return m, nil
}

func (m *Model) changeInterval(delta int) {
	newIdx := m.intervalIdx + delta
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(intervalPresets) {
		newIdx = len(intervalPresets) - 1
	}
	if newIdx == m.intervalIdx {
		return
	}
	m.intervalIdx = newIdx
	if m.controller != nil {
		m.controller.SetInterval(intervalPresets[m.intervalIdx])
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := renderHeader(m.snapshot, m.width, m.paused, m.activeIface)
	headerHeight := strings.Count(header, "\n") + 1

	footer := m.renderFooter()
	footerHeight := 1

	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.mode {
	case ViewSensorTable:
		content = m.table.render(m.width, contentHeight)
	case ViewSensorDetail:
		content = m.detail.render(m.findSensor(m.detail.id), m.width, contentHeight)
	}

	// Pad content to fill available height so the footer stays at the bottom
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}

	// Search bar (replaces footer when active)
	if m.searching {
		footer = styleSearchPrompt.Render("Filter: ") + m.searchInput.View()
	}

	result := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
	)

	if m.showHelp {
		result = renderHelp(m.width, m.height)
	}

	return result
}

func (m Model) renderFooter() string {
	var parts []string

	parts = append(parts,
		styleFooterKey.Render("?")+styleFooter.Render(" help"),
		styleFooterKey.Render("/")+styleFooter.Render(" filter"),
		styleFooterKey.Render("r")+styleFooter.Render(" reset"),
		styleFooterKey.Render("q")+styleFooter.Render(" quit"),
	)

	if m.table.filter != "" && !m.searching {
		parts = append(parts,
			styleSearchPrompt.Render("filter:")+styleFooter.Render(m.table.filter),
		)
	}

	if m.table.sort != sortNatural {
		parts = append(parts,
			styleFooter.Render("sort:")+styleHeaderValue.Render(m.table.sort.String()),
		)
	}

	if m.paused {
		parts = append(parts, stylePaused.Render("PAUSED"))
	}

	// Refresh interval indicator
	interval := intervalPresets[m.intervalIdx]
	parts = append(parts,
		styleFooterKey.Render("+/-")+styleFooter.Render(" ")+
			styleHeaderValue.Render(formatInterval(interval)),
	)

	return "  " + strings.Join(parts, "  ")
}

func (m Model) findSensor(id string) *model.SensorStats {
	for i := range m.snapshot.Sensors {
		if m.snapshot.Sensors[i].ID == id {
			return &m.snapshot.Sensors[i]
		}
	}
	return nil
}
