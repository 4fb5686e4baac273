package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/googlesky/sentop/internal/model"
)

// renderHeader draws the two-line top bar: title plus a quick summary of
// interface counters and the active interface.
func renderHeader(snap model.Snapshot, width int, paused bool, activeIface string) string {
	title := styleTitle.Render("sentop")

	var status []string
	if !snap.Taken.IsZero() {
		status = append(status,
			styleHeaderLabel.Render("updated ")+styleHeaderValue.Render(snap.Taken.Format("15:04:05")))
	}
	status = append(status,
		styleHeaderLabel.Render("sensors ")+styleHeaderValue.Render(fmt.Sprintf("%d", len(snap.Sensors))))
	if activeIface != "" {
		status = append(status,
			styleHeaderLabel.Render("iface ")+styleHeaderValue.Render(activeIface))
	}
	if paused {
		status = append(status, stylePaused.Render("PAUSED"))
	}

	line1 := title + "  " + strings.Join(status, "  ")

	var ifParts []string
	for _, iface := range snap.Interfaces {
		ifParts = append(ifParts, fmt.Sprintf("%s ↓%s ↑%s",
			iface.Name, formatBytes(iface.BytesRecv), formatBytes(iface.BytesSent)))
	}
	line2 := styleHeaderLabel.Render(" " + truncate(strings.Join(ifParts, "   "), width-1))

	return line1 + "\n" + line2
}

// renderHelp draws the key binding overlay centered in the window.
func renderHelp(width, height int) string {
	bindings := []struct {
		key  string
		desc string
	}{
		{"↑/↓, j/k", "move selection"},
		{"enter", "sensor detail"},
		{"esc", "back"},
		{"/", "filter sensors"},
		{"s", "cycle sort order"},
		{"r", "reset sample windows"},
		{"p", "pause display"},
		{"+/-", "faster/slower refresh"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("sentop keys") + "\n\n")
	for _, kb := range bindings {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			styleFooterKey.Render(fmt.Sprintf("%-9s", kb.key)),
			styleFooter.Render(kb.desc)))
	}

	return centerOverlay(styleOverlay.Render(b.String()), width, height)
}

// centerOverlay pads a block so it sits roughly centered in the window.
func centerOverlay(block string, width, height int) string {
	lines := strings.Split(block, "\n")

	padTop := (height - len(lines)) / 2
	if padTop < 0 {
		padTop = 0
	}

	blockWidth := 0
	for _, l := range lines {
		if n := lipgloss.Width(l); n > blockWidth {
			blockWidth = n
		}
	}
	padLeft := (width - blockWidth) / 2
	if padLeft < 0 {
		padLeft = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", padTop))
	indent := strings.Repeat(" ", padLeft)
	for i, l := range lines {
		b.WriteString(indent + l)
		if i != len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
