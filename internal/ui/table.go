package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/googlesky/sentop/internal/model"
)

// sortMode selects the sensor table ordering.
type sortMode int

const (
	sortNatural sortMode = iota // collector order: CPU, memory, load, thermal, net
	sortLatest
	sortAverage
	sortHighest
	sortModeCount
)

func (s sortMode) String() string {
	switch s {
	case sortLatest:
		return "latest"
	case sortAverage:
		return "avg"
	case sortHighest:
		return "max"
	default:
		return "natural"
	}
}

const sparkWidth = 16

// sensorTable is the main view: one row per sensor with window aggregates
// and a sparkline.
type sensorTable struct {
	cursor int
	offset int
	filter string
	sort   sortMode

	all      []model.SensorStats
	filtered []model.SensorStats
}

func newSensorTable() sensorTable {
	return sensorTable{}
}

func (t *sensorTable) update(sensors []model.SensorStats) {
	t.all = sensors
	t.applyFilterAndSort()
}

func (t *sensorTable) applyFilterAndSort() {
	t.filtered = t.filtered[:0]
	needle := strings.ToLower(t.filter)
	for _, s := range t.all {
		if needle == "" ||
			strings.Contains(strings.ToLower(s.Label), needle) ||
			strings.Contains(strings.ToLower(s.ID), needle) ||
			strings.Contains(s.Kind.String(), needle) {
			t.filtered = append(t.filtered, s)
		}
	}

	switch t.sort {
	case sortLatest:
		sort.SliceStable(t.filtered, func(i, j int) bool {
			return t.filtered[i].Latest > t.filtered[j].Latest
		})
	case sortAverage:
		sort.SliceStable(t.filtered, func(i, j int) bool {
			return t.filtered[i].Average > t.filtered[j].Average
		})
	case sortHighest:
		sort.SliceStable(t.filtered, func(i, j int) bool {
			return t.filtered[i].Highest > t.filtered[j].Highest
		})
	}

	if t.cursor >= len(t.filtered) {
		t.cursor = len(t.filtered) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *sensorTable) nextSort() {
	t.sort = (t.sort + 1) % sortModeCount
	t.applyFilterAndSort()
}

func (t *sensorTable) selected() *model.SensorStats {
	if t.cursor < 0 || t.cursor >= len(t.filtered) {
		return nil
	}
	return &t.filtered[t.cursor]
}

func (t *sensorTable) moveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *sensorTable) moveDown() {
	if t.cursor < len(t.filtered)-1 {
		t.cursor++
	}
}

func (t *sensorTable) pageUp() {
	t.cursor -= 10
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *sensorTable) pageDown() {
	t.cursor += 10
	if t.cursor > len(t.filtered)-1 {
		t.cursor = len(t.filtered) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *sensorTable) goHome() {
	t.cursor = 0
}

func (t *sensorTable) goEnd() {
	t.cursor = len(t.filtered) - 1
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// scroll keeps the cursor inside the visible row range.
func (t *sensorTable) scroll(visible int) {
	if visible < 1 {
		visible = 1
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+visible {
		t.offset = t.cursor - visible + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

func (t *sensorTable) render(width, height int) string {
	// One line for the column header, the rest for rows.
	visible := height - 1
	t.scroll(visible)

	nameWidth := width - (10 + 10 + 10 + 10 + 8 + sparkWidth + 7)
	if nameWidth < 8 {
		nameWidth = 8
	}

	var b strings.Builder
	header := fmt.Sprintf(" %-*s %10s %10s %10s %10s %7s  %-*s",
		nameWidth, "SENSOR", "LATEST", "AVG", "MIN", "MAX", "N", sparkWidth, "WINDOW")
	b.WriteString(styleTableHeader.Render(truncate(header, width)))
	b.WriteString("\n")

	end := t.offset + visible
	if end > len(t.filtered) {
		end = len(t.filtered)
	}
	for i := t.offset; i < end; i++ {
		b.WriteString(t.renderRow(i, nameWidth, width))
		if i != end-1 {
			b.WriteString("\n")
		}
	}

	if len(t.filtered) == 0 {
		b.WriteString(styleHeaderLabel.Render(" no sensors match"))
	}

	return b.String()
}

func (t *sensorTable) renderRow(i, nameWidth, width int) string {
	s := t.filtered[i]

	// Compose plain text first and style the whole row once, so nested ANSI
	// resets don't cut the selection background short.
	line := fmt.Sprintf(" %-*s %10s %10s %10s %10s %4d/%-2d %s %s",
		nameWidth, truncate(s.Label, nameWidth),
		formatValue(s.Latest, s.Unit),
		formatValue(s.Average, s.Unit),
		formatValue(s.Lowest, s.Unit),
		formatValue(s.Highest, s.Unit),
		s.Count, s.Window,
		warmupMarker(s),
		renderSparkline(s.Samples, sparkWidth),
	)
	line = truncate(line, width)

	switch {
	case i == t.cursor:
		return styleSelectedRow.Render(line)
	case !s.Ready:
		return styleWarming.Render(line)
	default:
		return line
	}
}

// warmupMarker shows whether a sensor's window holds a full set of samples.
func warmupMarker(s model.SensorStats) string {
	if s.Ready {
		return "●"
	}
	return "○"
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
