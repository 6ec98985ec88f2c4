package config

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/underwave-robotics/tfbridge/frames"
)

//go:embed defaults/*.yml
var defaultsFS embed.FS

// VehicleDefaults loads the packaged offset file for a vehicle type as a
// dotted-path source. The file ships with the binary and uses the same
// schema as the live configuration's sensor section.
func VehicleDefaults(t frames.VehicleType) (Source, error) {
	data, err := defaultsFS.ReadFile("defaults/" + string(t) + ".yml")
	if err != nil {
		return nil, fmt.Errorf("packaged defaults for %s: %w", t, err)
	}
	var raw map[string]map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("packaged defaults for %s: %w", t, err)
	}
	m := MapSource{}
	for sensor, axes := range raw {
		for axis, v := range axes {
			m[sensor+"."+axis] = v
		}
	}
	return m, nil
}
