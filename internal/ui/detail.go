package ui

import (
	"fmt"
	"strings"

	"github.com/googlesky/sentop/internal/model"
)

// sensorDetail is the per-sensor view: a full-width sparkline plus the
// window aggregates spelled out.
type sensorDetail struct {
	id string
}

func newSensorDetail(id string) sensorDetail {
	return sensorDetail{id: id}
}

func (d *sensorDetail) render(s *model.SensorStats, width, height int) string {
	if s == nil {
		return styleHeaderLabel.Render(" sensor no longer reported")
	}

	var b strings.Builder
	b.WriteString(" " + styleTitle.Render(s.Label) + "\n\n")

	sparkW := width - 4
	if sparkW > len(s.Samples) {
		sparkW = len(s.Samples)
	}
	if sparkW > 0 {
		b.WriteString("  " + styleSparkline.Render(renderSparkline(s.Samples, sparkW)) + "\n\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"latest", formatValue(s.Latest, s.Unit)},
		{"average", formatValue(s.Average, s.Unit)},
		{"lowest", formatValue(s.Lowest, s.Unit)},
		{"highest", formatValue(s.Highest, s.Unit)},
		{"samples", fmt.Sprintf("%d of %d", s.Count, s.Window)},
		{"window", windowState(s)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styleHeaderLabel.Render(fmt.Sprintf("%-9s", r.label)),
			styleHeaderValue.Render(strings.TrimSpace(r.value))))
	}

	b.WriteString("\n" + styleFooter.Render("  esc back  r reset window"))
	return b.String()
}

func windowState(s *model.SensorStats) string {
	if s.Ready {
		return "full, aggregates cover the whole window"
	}
	return fmt.Sprintf("warming up, %d more sample(s) until full", s.Window-s.Count)
}
