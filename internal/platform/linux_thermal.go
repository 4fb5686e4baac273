//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/googlesky/sentop/internal/model"
)

const thermalRoot = "/sys/class/thermal"

// readThermalZones reads every /sys/class/thermal/thermal_zone*/temp it can.
// Machines without thermal zones (VMs, containers) simply yield nothing.
func readThermalZones() []model.Reading {
	zones, err := filepath.Glob(filepath.Join(thermalRoot, "thermal_zone*"))
	if err != nil {
		return nil
	}

	var readings []model.Reading
	for _, zone := range zones {
		r, err := readThermalZone(zone)
		if err != nil {
			continue
		}
		readings = append(readings, r)
	}
	return readings
}

func readThermalZone(dir string) (model.Reading, error) {
	tempRaw, err := os.ReadFile(filepath.Join(dir, "temp"))
	if err != nil {
		return model.Reading{}, err
	}
	celsius, err := parseMilliCelsius(string(tempRaw))
	if err != nil {
		return model.Reading{}, err
	}

	// The zone type names the sensor, e.g. "x86_pkg_temp" or "cpu-thermal".
	name := filepath.Base(dir)
	if typeRaw, err := os.ReadFile(filepath.Join(dir, "type")); err == nil {
		if t := strings.TrimSpace(string(typeRaw)); t != "" {
			name = t
		}
	}

	return model.Reading{
		ID:    "thermal:" + filepath.Base(dir),
		Label: name,
		Kind:  model.KindThermal,
		Unit:  model.UnitCelsius,
		Value: celsius,
	}, nil
}

// parseMilliCelsius converts the sysfs millidegree representation ("45000\n")
// to degrees Celsius.
func parseMilliCelsius(s string) (float64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(v) / 1000, nil
}
