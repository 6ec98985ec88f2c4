package config

import (
	"fmt"

	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/transform"
)

// offsetAxes is the dotted-path leaf order for one sensor offset.
var offsetAxes = [6]string{"x", "y", "z", "roll", "pitch", "yaw"}

// ResolveProfile resolves every sensor offset for the configured vehicle
// into an immutable Profile. Resolution per value: live configuration
// first, packaged vehicle-type defaults second, MissingSensorConfigError
// third. The default file is only opened once a live value is missing.
func ResolveProfile(cfg VehicleConfig) (frames.Profile, error) {
	vt, err := frames.ParseVehicleType(cfg.Type)
	if err != nil {
		return frames.Profile{}, err
	}
	live := cfg.Source()

	// Lazy one-shot loader for the packaged defaults.
	var packaged Source
	var packagedErr error
	defaults := func() (Source, error) {
		if packaged == nil && packagedErr == nil {
			packaged, packagedErr = VehicleDefaults(vt)
		}
		return packaged, packagedErr
	}

	offsets := make(map[frames.Sensor]frames.Offset, len(vt.Sensors()))
	for _, sensor := range vt.Sensors() {
		var off frames.Offset
		dst := [6]*float64{&off.X, &off.Y, &off.Z, &off.Roll, &off.Pitch, &off.Yaw}
		for i, axis := range offsetAxes {
			v, err := resolveAxis(live, defaults, sensor, axis)
			if err != nil {
				return frames.Profile{}, err
			}
			*dst[i] = v
		}
		offsets[sensor] = off
	}
	return frames.Profile{Name: cfg.Name, Type: vt, Offsets: offsets}, nil
}

// resolveAxis returns the value at {sensor}.{axis}, preferring the live
// source. Absence is an explicit result here, not an error to recover from:
// only when both tiers are silent does resolution fail.
func resolveAxis(live Source, defaults func() (Source, error), sensor frames.Sensor, axis string) (float64, error) {
	path := string(sensor) + "." + axis
	if v, ok := live.Float(path); ok {
		return v, nil
	}
	def, err := defaults()
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", path, err)
	}
	if v, ok := def.Float(path); ok {
		return v, nil
	}
	return 0, &transform.MissingSensorConfigError{Sensor: string(sensor), Axis: axis}
}
