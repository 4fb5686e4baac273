//go:build linux

package platform

import (
	"math"
	"testing"
)

func TestParseCPULine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantID    string
		wantBusy  uint64
		wantTotal uint64
		wantErr   bool
	}{
		{
			name: "aggregate line",
			// user nice system idle iowait irq softirq steal
			line:      "cpu  100 10 50 800 40 5 5 0",
			wantID:    "cpu",
			wantBusy:  170, // everything except idle(800) and iowait(40)
			wantTotal: 1010,
		},
		{
			name:      "per-cpu line",
			line:      "cpu3 10 0 5 100 0 0 0 0 0 0",
			wantID:    "cpu3",
			wantBusy:  15,
			wantTotal: 115,
		},
		{
			name:    "truncated line",
			line:    "cpu 1 2 3",
			wantErr: true,
		},
		{
			name:    "garbage counter",
			line:    "cpu 1 2 3 x 5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ct, err := parseCPULine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID || ct.busy != tt.wantBusy || ct.total != tt.wantTotal {
				t.Errorf("got id=%s busy=%d total=%d, want id=%s busy=%d total=%d",
					id, ct.busy, ct.total, tt.wantID, tt.wantBusy, tt.wantTotal)
			}
		})
	}
}

func TestCPUUsageReadings(t *testing.T) {
	prev := map[string]cpuTimes{
		"cpu":  {busy: 100, total: 1000},
		"cpu0": {busy: 60, total: 500},
		"cpu1": {busy: 40, total: 500},
	}
	cur := map[string]cpuTimes{
		"cpu":  {busy: 150, total: 1100}, // 50 busy of 100 total -> 50%
		"cpu0": {busy: 90, total: 550},   // 30 of 50 -> 60%
		"cpu1": {busy: 60, total: 550},   // 20 of 50 -> 40%
	}

	readings := cpuUsageReadings(prev, cur)
	if len(readings) != 3 {
		t.Fatalf("got %d readings, want 3", len(readings))
	}

	// Aggregate first, then per-CPU in numeric order.
	wantIDs := []string{"cpu", "cpu0", "cpu1"}
	wantVals := []float64{50, 60, 40}
	for i, r := range readings {
		if r.ID != wantIDs[i] {
			t.Errorf("reading %d: ID = %s, want %s", i, r.ID, wantIDs[i])
		}
		if math.Abs(r.Value-wantVals[i]) > 1e-9 {
			t.Errorf("reading %d: Value = %v, want %v", i, r.Value, wantVals[i])
		}
	}
}

func TestCPUUsageReadingsFirstCollection(t *testing.T) {
	cur := map[string]cpuTimes{"cpu": {busy: 100, total: 1000}}
	if got := cpuUsageReadings(nil, cur); got != nil {
		t.Errorf("expected no readings without a previous snapshot, got %d", len(got))
	}
}

func TestCPUUsageReadingsCounterReset(t *testing.T) {
	prev := map[string]cpuTimes{"cpu": {busy: 500, total: 5000}}
	cur := map[string]cpuTimes{"cpu": {busy: 10, total: 100}} // went backwards
	if got := cpuUsageReadings(prev, cur); got != nil {
		t.Errorf("expected reset counters to be skipped, got %d readings", len(got))
	}
}

func TestParseMemInfo(t *testing.T) {
	text := `MemTotal:       16000000 kB
MemFree:         2000000 kB
MemAvailable:   12000000 kB
Buffers:          500000 kB
`
	r, err := parseMemInfo(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "mem" {
		t.Errorf("ID = %s, want mem", r.ID)
	}
	if want := 25.0; math.Abs(r.Value-want) > 1e-9 {
		t.Errorf("Value = %v, want %v", r.Value, want)
	}
}

func TestParseMemInfoMissingTotal(t *testing.T) {
	if _, err := parseMemInfo("MemFree: 100 kB\n"); err == nil {
		t.Fatal("expected error for missing MemTotal")
	}
}

func TestParseLoadAvg(t *testing.T) {
	r, err := parseLoadAvg("1.25 0.80 0.55 2/345 6789\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != 1.25 {
		t.Errorf("Value = %v, want 1.25", r.Value)
	}
}

func TestParseMilliCelsius(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"45000\n", 45.0, false},
		{"-5500", -5.5, false},
		{"", 0, true},
		{"hot", 0, true},
	}
	for _, tt := range tests {
		got, err := parseMilliCelsius(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMilliCelsius(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMilliCelsius(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMilliCelsius(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNetDevLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantRx   uint64
		wantTx   uint64
		wantErr  bool
	}{
		{
			name:     "typical line",
			line:     "  eth0: 1234567    8901    0    0    0     0          0         0  7654321    1098    0    0    0     0       0          0",
			wantName: "eth0",
			wantRx:   1234567,
			wantTx:   7654321,
		},
		{
			name:    "header line",
			line:    " face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed",
			wantErr: true,
		},
		{
			name:    "truncated",
			line:    "eth0: 1 2 3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := parseNetDevLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stats.Name != tt.wantName || stats.BytesRecv != tt.wantRx || stats.BytesSent != tt.wantTx {
				t.Errorf("got %+v, want name=%s rx=%d tx=%d", stats, tt.wantName, tt.wantRx, tt.wantTx)
			}
		})
	}
}
