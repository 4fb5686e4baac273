// Package model holds the plain data types shared between the platform,
// collector and ui layers.
package model

import "time"

// SensorKind classifies what a reading measures, which determines how the UI
// formats and groups it.
type SensorKind int

const (
	KindCPU SensorKind = iota
	KindMemory
	KindLoad
	KindThermal
	KindNetRate
)

func (k SensorKind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindMemory:
		return "memory"
	case KindLoad:
		return "load"
	case KindThermal:
		return "thermal"
	case KindNetRate:
		return "net"
	default:
		return "unknown"
	}
}

// Unit describes how a sensor value should be rendered.
type Unit int

const (
	UnitPercent Unit = iota
	UnitCelsius
	UnitBytesPerSec
	UnitLoad
)

// Reading is a single observation of one sensor at one instant.
type Reading struct {
	// ID is a stable identifier, e.g. "cpu", "cpu3", "thermal:x86_pkg_temp".
	ID    string
	Label string
	Kind  SensorKind
	Unit  Unit
	Value float64
}

// SensorStats is the summarized view of one sensor's sample window, built by
// the collector for each snapshot.
type SensorStats struct {
	ID    string
	Label string
	Kind  SensorKind
	Unit  Unit

	Latest  float64
	Average float64
	Lowest  float64
	Highest float64

	// Count is the number of genuine samples in the window; Window is the
	// fixed window size. Ready is true once the window has wrapped, i.e.
	// every aggregate covers a full window.
	Count  int
	Window int
	Ready  bool

	// Samples holds the window contents oldest first, for sparklines.
	Samples []float64
}

// InterfaceStats carries cumulative byte counters for one network interface.
type InterfaceStats struct {
	Name      string
	BytesRecv uint64
	BytesSent uint64
}

// Snapshot is one complete collection cycle, published to the UI.
type Snapshot struct {
	Taken       time.Time
	Sensors     []SensorStats
	Interfaces  []InterfaceStats
	ActiveIface string
}
