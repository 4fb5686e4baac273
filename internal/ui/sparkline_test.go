package ui

import "testing"

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		width   int
		want    string
	}{
		{"empty", nil, 10, ""},
		{"zero width", []float64{1, 2}, 0, ""},
		{"flat series renders low", []float64{5, 5, 5}, 10, "▁▁▁"},
		{"ramp", []float64{0, 1, 2, 3, 4, 5, 6, 7}, 10, "▁▂▃▄▅▆▇█"},
		{"extremes", []float64{0, 100}, 10, "▁█"},
		{"keeps most recent when too wide", []float64{9, 9, 0, 100}, 2, "▁█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderSparkline(tt.samples, tt.width); got != tt.want {
				t.Errorf("renderSparkline(%v, %d) = %q, want %q", tt.samples, tt.width, got, tt.want)
			}
		})
	}
}
