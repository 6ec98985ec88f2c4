package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/transform"
)

func TestResolveProfile_DefaultsOnly(t *testing.T) {
	t.Parallel()

	for _, vt := range []string{"mk1", "mk2"} {
		vt := vt
		t.Run(vt, func(t *testing.T) {
			t.Parallel()
			p, err := ResolveProfile(VehicleConfig{Name: "auv1", Type: vt})
			require.NoError(t, err, "packaged defaults must be complete")
			assert.Equal(t, "auv1", p.Name)
			assert.Len(t, p.Offsets, len(p.Type.Sensors()))
		})
	}
}

func TestResolveProfile_LiveValueWinsOverDefault(t *testing.T) {
	t.Parallel()

	cfg := VehicleConfig{
		Name: "auv1",
		Type: "mk2",
		Sensors: map[string]map[string]float64{
			"front_camera": {"x": 9.75},
		},
	}
	p, err := ResolveProfile(cfg)
	require.NoError(t, err)

	// Overridden axis takes the live value; the rest fall back to the
	// packaged mk2 defaults.
	front := p.Offsets[frames.SensorFrontCamera]
	assert.Equal(t, 9.75, front.X)
	assert.Equal(t, -0.067, front.Z)
	assert.Equal(t, -0.16, p.Offsets[frames.SensorBarometer].X)
}

func TestResolveProfile_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := ResolveProfile(VehicleConfig{Name: "auv1", Type: "mk9"})
	assert.Error(t, err)
}

func TestResolveAxis_MissingEverywhere(t *testing.T) {
	t.Parallel()

	empty := func() (Source, error) { return MapSource{}, nil }
	_, err := resolveAxis(MapSource{}, empty, frames.SensorBarometer, "yaw")

	var missing *transform.MissingSensorConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "barometer", missing.Sensor)
	assert.Equal(t, "yaw", missing.Axis)
}

func TestResolveAxis_DefaultsNotLoadedWhenLiveComplete(t *testing.T) {
	t.Parallel()

	live := MapSource{"barometer.z": 0.5}
	defaults := func() (Source, error) {
		t.Fatal("defaults must be loaded lazily, only on a live miss")
		return nil, nil
	}
	v, err := resolveAxis(live, defaults, frames.SensorBarometer, "z")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestVehicleDefaults(t *testing.T) {
	t.Parallel()

	src, err := VehicleDefaults(frames.MK2)
	require.NoError(t, err)

	v, ok := src.Float("vertical_camera.pitch")
	require.True(t, ok)
	assert.InDelta(t, 1.5707963, v, 1e-6)

	_, ok = src.Float("vertical_camera.nonsense")
	assert.False(t, ok)
}

func TestVehicleConfigSource(t *testing.T) {
	t.Parallel()

	cfg := VehicleConfig{Sensors: map[string]map[string]float64{
		"front_camera": {"x": 1.5, "yaw": -0.1},
	}}
	src := cfg.Source()

	v, ok := src.Float("front_camera.yaw")
	require.True(t, ok)
	assert.Equal(t, -0.1, v)

	_, ok = src.Float("front_camera.z")
	assert.False(t, ok, "absent value must not read as zero")
}
