package config

// Source supplies configuration values addressed by dotted hierarchical
// paths (e.g. "front_camera.x"). Implementations must distinguish "value
// present" from "value absent": absence triggers the packaged-default
// fallback, never a silent zero.
type Source interface {
	Float(path string) (float64, bool)
}

// MapSource is a flat dotted-path value map.
type MapSource map[string]float64

// Float returns the value at path and whether it is present.
func (m MapSource) Float(path string) (float64, bool) {
	v, ok := m[path]
	return v, ok
}

// Source flattens the vehicle's sensor override section into a dotted-path
// source.
func (c VehicleConfig) Source() Source {
	m := MapSource{}
	for sensor, axes := range c.Sensors {
		for axis, v := range axes {
			m[sensor+"."+axis] = v
		}
	}
	return m
}
