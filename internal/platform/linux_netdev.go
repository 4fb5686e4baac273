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

// /proc/net/dev layout (after two header lines):
//
//	Inter-|   Receive                            ...|  Transmit
//	 face |bytes    packets errs drop fifo frame ...|bytes    packets ...
//	  eth0: 1234567   8901    0    0    0     0  ...  7654321   1098 ...
//
// Receive bytes is the first counter, transmit bytes the ninth.

// ParseNetDev reads cumulative interface counters from /proc/net/dev. This
// is the fallback when a netlink link dump is unavailable.
func ParseNetDev() ([]model.InterfaceStats, error) {
	f, err := os.Open("/proc/net/dev")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ifaces []model.InterfaceStats
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= 2 {
			continue // column headers
		}
		stats, err := parseNetDevLine(scanner.Text())
		if err != nil {
			continue
		}
		if stats.Name == "lo" {
			continue
		}
		ifaces = append(ifaces, stats)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ifaces, nil
}

// parseNetDevLine parses a single interface line from /proc/net/dev.
func parseNetDevLine(line string) (model.InterfaceStats, error) {
	var stats model.InterfaceStats

	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return stats, fmt.Errorf("no interface separator in %q", line)
	}
	stats.Name = strings.TrimSpace(name)
	if stats.Name == "" {
		return stats, fmt.Errorf("empty interface name in %q", line)
	}

	fields := strings.Fields(rest)
	if len(fields) < 16 {
		return stats, fmt.Errorf("too few counters: %d", len(fields))
	}

	rx, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return stats, fmt.Errorf("parse rx bytes: %w", err)
	}
	tx, err := strconv.ParseUint(fields[8], 10, 64)
	if err != nil {
		return stats, fmt.Errorf("parse tx bytes: %w", err)
	}

	stats.BytesRecv = rx
	stats.BytesSent = tx
	return stats, nil
}
