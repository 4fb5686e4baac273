package ui

import (
	"testing"
	"time"

	"github.com/googlesky/sentop/internal/model"
)

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1s"},
		{2500 * time.Millisecond, "2.5s"},
		{10 * time.Second, "10s"},
	}
	for _, tt := range tests {
		if got := formatInterval(tt.d); got != tt.want {
			t.Errorf("formatInterval(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		unit model.Unit
		want string
	}{
		{42.25, model.UnitPercent, " 42.2%"},
		{51.5, model.UnitCelsius, " 51.5°C"},
		{1.5, model.UnitLoad, " 1.50"},
		{0, model.UnitBytesPerSec, "0 B/s"},
		{2048, model.UnitBytesPerSec, "2.0 KiB/s"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.v, tt.unit); got != tt.want {
			t.Errorf("formatValue(%v, %v) = %q, want %q", tt.v, tt.unit, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 3); got != "hel" {
		t.Errorf("truncate = %q, want %q", got, "hel")
	}
	if got := truncate("hi", 10); got != "hi" {
		t.Errorf("truncate should keep short strings, got %q", got)
	}
	if got := truncate("hi", 0); got != "" {
		t.Errorf("truncate with zero width = %q, want empty", got)
	}
}
