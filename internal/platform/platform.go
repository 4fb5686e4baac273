// Package platform reads periodic system readings (CPU, memory, load,
// thermal sensors, network interface counters) behind an OS-neutral
// interface. Construction picks the best source available at runtime and
// degrades gracefully when one is missing.
package platform

import "github.com/googlesky/sentop/internal/model"

// Platform is one collection backend. Collect returns the current sensor
// readings plus cumulative per-interface byte counters; values are raw
// (counters, not rates) and the collector derives windows and rates on top.
type Platform interface {
	Collect() ([]model.Reading, []model.InterfaceStats, error)
	Close() error
}
