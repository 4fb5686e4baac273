//go:build darwin

package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/googlesky/sentop/internal/model"
)

const darwinCmdTimeout = 3 * time.Second

// DarwinPlatform collects readings by shelling out to sysctl, vm_stat and
// netstat. macOS exposes no /proc, so this mirrors what Activity Monitor's
// command-line cousins do.
type DarwinPlatform struct{}

// NewPlatform creates the macOS collection backend.
func NewPlatform() (Platform, error) {
	return &DarwinPlatform{}, nil
}

func (p *DarwinPlatform) Close() error {
	return nil
}

func (p *DarwinPlatform) Collect() ([]model.Reading, []model.InterfaceStats, error) {
	var readings []model.Reading

	if load, err := p.loadAvg(); err == nil {
		readings = append(readings, load)
	}
	if mem, err := p.memoryUsed(); err == nil {
		readings = append(readings, mem)
	}

	ifaces, err := p.interfaceStats()
	if err != nil {
		ifaces = nil
	}

	if len(readings) == 0 && ifaces == nil {
		return nil, nil, fmt.Errorf("no collection source available")
	}
	return readings, ifaces, nil
}

func (p *DarwinPlatform) loadAvg() (model.Reading, error) {
	out, err := runCmd("sysctl", "-n", "vm.loadavg")
	if err != nil {
		return model.Reading{}, err
	}
	load, err := parseDarwinLoadAvg(out)
	if err != nil {
		return model.Reading{}, err
	}
	return model.Reading{
		ID:    "load1",
		Label: "Load 1m",
		Kind:  model.KindLoad,
		Unit:  model.UnitLoad,
		Value: load,
	}, nil
}

// parseDarwinLoadAvg parses sysctl's "{ 1.23 1.01 0.95 }" format.
func parseDarwinLoadAvg(s string) (float64, error) {
	fields := strings.Fields(strings.Trim(strings.TrimSpace(s), "{}"))
	if len(fields) < 1 {
		return 0, fmt.Errorf("loadavg: empty output %q", s)
	}
	return strconv.ParseFloat(fields[0], 64)
}

func (p *DarwinPlatform) memoryUsed() (model.Reading, error) {
	totalOut, err := runCmd("sysctl", "-n", "hw.memsize")
	if err != nil {
		return model.Reading{}, err
	}
	total, err := strconv.ParseUint(strings.TrimSpace(totalOut), 10, 64)
	if err != nil || total == 0 {
		return model.Reading{}, fmt.Errorf("hw.memsize: %q", totalOut)
	}

	vmOut, err := runCmd("vm_stat")
	if err != nil {
		return model.Reading{}, err
	}
	free, err := parseVMStatFreeBytes(vmOut)
	if err != nil {
		return model.Reading{}, err
	}

	used := 100 * float64(total-min(free, total)) / float64(total)
	return model.Reading{
		ID:    "mem",
		Label: "Memory used",
		Kind:  model.KindMemory,
		Unit:  model.UnitPercent,
		Value: used,
	}, nil
}

// parseVMStatFreeBytes extracts reclaimable memory from vm_stat output:
//
//	Mach Virtual Memory Statistics: (page size of 16384 bytes)
//	Pages free:                        12345.
//	Pages inactive:                    67890.
func parseVMStatFreeBytes(out string) (uint64, error) {
	pageSize := uint64(4096)
	var freePages uint64

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "Mach Virtual Memory Statistics"):
			if i := strings.Index(line, "page size of "); i >= 0 {
				fields := strings.Fields(line[i+len("page size of "):])
				if len(fields) > 0 {
					if v, err := strconv.ParseUint(fields[0], 10, 64); err == nil {
						pageSize = v
					}
				}
			}
		case strings.HasPrefix(line, "Pages free:"),
			strings.HasPrefix(line, "Pages inactive:"):
			fields := strings.Fields(line)
			raw := strings.TrimSuffix(fields[len(fields)-1], ".")
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("vm_stat line %q: %w", line, err)
			}
			freePages += v
		}
	}

	if freePages == 0 {
		return 0, fmt.Errorf("vm_stat: no page counts found")
	}
	return freePages * pageSize, nil
}

func (p *DarwinPlatform) interfaceStats() ([]model.InterfaceStats, error) {
	out, err := runCmd("netstat", "-ibn")
	if err != nil {
		return nil, err
	}
	return parseNetstatInterfaces(out), nil
}

// parseNetstatInterfaces parses `netstat -ibn`. Each interface appears once
// per address plus once as a <Link#N> row carrying the byte counters; only
// the link rows are used and duplicates are skipped.
func parseNetstatInterfaces(out string) []model.InterfaceStats {
	var ifaces []model.InterfaceStats
	seen := make(map[string]bool)

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 { // column header
			continue
		}
		fields := strings.Fields(line)
		// Name Mtu Network Address Ipkts Ierrs Ibytes Opkts Oerrs Obytes Coll
		if len(fields) < 10 {
			continue
		}
		name := fields[0]
		if seen[name] || name == "lo0" || !strings.HasPrefix(fields[2], "<Link") {
			continue
		}

		rx, err1 := strconv.ParseUint(fields[6], 10, 64)
		tx, err2 := strconv.ParseUint(fields[9], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}

		seen[name] = true
		ifaces = append(ifaces, model.InterfaceStats{
			Name:      name,
			BytesRecv: rx,
			BytesSent: tx,
		})
	}
	return ifaces
}

func runCmd(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), darwinCmdTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}
