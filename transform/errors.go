package transform

import (
	"errors"
	"fmt"
)

// ErrTransformUnavailable reports that the frame graph could not produce the
// requested transform within the lookup's bounded wait. It is expected
// during the short window after startup before the tree is fully populated;
// callers drop the sample and continue.
var ErrTransformUnavailable = errors.New("transform unavailable")

// InvalidPoseSampleError reports a malformed pose sample (NaN translation or
// orientation norm outside tolerance). The sample is dropped, never
// published.
type InvalidPoseSampleError struct {
	Reason string
}

func (e *InvalidPoseSampleError) Error() string {
	return fmt.Sprintf("invalid pose sample: %s", e.Reason)
}

// MissingSensorConfigError reports that neither the live configuration nor
// the packaged per-vehicle-type defaults supply a mounting offset value.
// Fatal at startup: the vehicle cannot be modeled with silently-wrong
// offsets.
type MissingSensorConfigError struct {
	Sensor string
	Axis   string
}

func (e *MissingSensorConfigError) Error() string {
	return fmt.Sprintf("missing sensor config: no value for %s.%s in configuration or packaged defaults", e.Sensor, e.Axis)
}

// InvalidRoleError reports a frame role that does not exist for the given
// vehicle type. This is a programming error, fatal.
type InvalidRoleError struct {
	Role        string
	VehicleType string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid frame role %q for vehicle type %q", e.Role, e.VehicleType)
}
