package ui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/googlesky/sentop/internal/model"
)

// formatValue renders a sensor value with its unit.
func formatValue(v float64, unit model.Unit) string {
	switch unit {
	case model.UnitPercent:
		return fmt.Sprintf("%5.1f%%", v)
	case model.UnitCelsius:
		return fmt.Sprintf("%5.1f°C", v)
	case model.UnitBytesPerSec:
		return formatRate(v)
	case model.UnitLoad:
		return fmt.Sprintf("%5.2f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// formatRate renders bytes per second with a binary-prefix byte count.
func formatRate(bytesPerSec float64) string {
	if bytesPerSec < 0 {
		bytesPerSec = 0
	}
	return humanize.IBytes(uint64(bytesPerSec)) + "/s"
}

func formatBytes(n uint64) string {
	return humanize.IBytes(n)
}

func formatInterval(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	s := float64(ms) / 1000.0
	if s == float64(int(s)) {
		return fmt.Sprintf("%ds", int(s))
	}
	return fmt.Sprintf("%.1fs", s)
}
