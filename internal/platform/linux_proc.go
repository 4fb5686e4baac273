//go:build linux

package platform

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/googlesky/sentop/internal/model"
)

// /proc/stat CPU line layout:
//
//	cpu  user nice system idle iowait irq softirq steal guest guest_nice
//	cpu0 ...
//
// All values are cumulative jiffies. Usage is the busy fraction of the delta
// between two snapshots, so the platform keeps the previous counters.

// cpuTimes holds the cumulative busy and total jiffies for one CPU line.
type cpuTimes struct {
	busy  uint64
	total uint64
}

func readProcStat() (map[string]cpuTimes, error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	times := make(map[string]cpuTimes)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu") {
			continue
		}
		id, ct, err := parseCPULine(line)
		if err != nil {
			continue
		}
		times[id] = ct
	}
	return times, scanner.Err()
}

// parseCPULine parses one "cpu..." line from /proc/stat.
func parseCPULine(line string) (string, cpuTimes, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return "", cpuTimes{}, fmt.Errorf("too few fields: %d", len(fields))
	}

	var ct cpuTimes
	for i, f := range fields[1:] {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return "", cpuTimes{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		ct.total += v
		// fields[4] is idle, fields[5] is iowait; everything else is busy.
		if i != 3 && i != 4 {
			ct.busy += v
		}
	}
	return fields[0], ct, nil
}

// cpuUsageReadings turns two /proc/stat snapshots into usage-percent
// readings. Returns nil when prev is empty (first collection) or when a
// counter went backwards (e.g. after a suspend/resume glitch).
func cpuUsageReadings(prev, cur map[string]cpuTimes) []model.Reading {
	if len(prev) == 0 {
		return nil
	}

	var readings []model.Reading
	add := func(id string, usage float64) {
		label := "CPU total"
		if id != "cpu" {
			label = "CPU " + strings.TrimPrefix(id, "cpu")
		}
		readings = append(readings, model.Reading{
			ID:    id,
			Label: label,
			Kind:  model.KindCPU,
			Unit:  model.UnitPercent,
			Value: usage,
		})
	}

	// Aggregate line first, then per-CPU lines in numeric order.
	ids := make([]string, 0, len(cur))
	for id := range cur {
		if id != "cpu" {
			ids = append(ids, id)
		}
	}
	sortCPUIDs(ids)
	if _, ok := cur["cpu"]; ok {
		ids = append([]string{"cpu"}, ids...)
	}

	for _, id := range ids {
		p, ok := prev[id]
		if !ok {
			continue
		}
		c := cur[id]
		if c.total <= p.total || c.busy < p.busy {
			continue
		}
		usage := 100 * float64(c.busy-p.busy) / float64(c.total-p.total)
		add(id, usage)
	}
	return readings
}

// sortCPUIDs orders "cpuN" identifiers numerically, so cpu10 follows cpu9.
func sortCPUIDs(ids []string) {
	num := func(id string) int {
		n, err := strconv.Atoi(strings.TrimPrefix(id, "cpu"))
		if err != nil {
			return 0
		}
		return n
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && num(ids[j]) < num(ids[j-1]); j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// readMemInfo reads /proc/meminfo and reports used memory as a percentage of
// total, where used = total - available.
func readMemInfo() (model.Reading, error) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return model.Reading{}, err
	}
	return parseMemInfo(string(data))
}

func parseMemInfo(text string) (model.Reading, error) {
	var total, available uint64
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total = v
		case "MemAvailable:":
			available = v
		}
	}
	if total == 0 {
		return model.Reading{}, fmt.Errorf("meminfo: MemTotal missing or zero")
	}

	used := 100 * float64(total-available) / float64(total)
	return model.Reading{
		ID:    "mem",
		Label: "Memory used",
		Kind:  model.KindMemory,
		Unit:  model.UnitPercent,
		Value: used,
	}, nil
}

// readLoadAvg reads the 1-minute load average from /proc/loadavg.
func readLoadAvg() (model.Reading, error) {
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return model.Reading{}, err
	}
	return parseLoadAvg(string(data))
}

func parseLoadAvg(text string) (model.Reading, error) {
	fields := strings.Fields(text)
	if len(fields) < 1 {
		return model.Reading{}, fmt.Errorf("loadavg: empty")
	}
	load, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return model.Reading{}, fmt.Errorf("loadavg: %w", err)
	}
	return model.Reading{
		ID:    "load1",
		Label: "Load 1m",
		Kind:  model.KindLoad,
		Unit:  model.UnitLoad,
		Value: load,
	}, nil
}
