package ui

import "strings"

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderSparkline draws samples (oldest first) as a block-character strip of
// at most width cells. When there are more samples than cells, only the most
// recent ones are shown. Values are scaled against the min/max of the
// visible samples; a flat series renders at the lowest level.
func renderSparkline(samples []float64, width int) string {
	if width <= 0 || len(samples) == 0 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	for _, v := range samples {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
