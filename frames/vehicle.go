package frames

import "fmt"

// VehicleType enumerates the supported hull configurations.
type VehicleType string

const (
	// MK1 carries a single forward camera and a barometer.
	MK1 VehicleType = "mk1"
	// MK2 carries forward and vertical cameras and a barometer.
	MK2 VehicleType = "mk2"
)

// ParseVehicleType validates a configured type string.
func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case MK1, MK2:
		return VehicleType(s), nil
	}
	return "", fmt.Errorf("unknown vehicle type %q (want mk1 or mk2)", s)
}

// Sensor identifies a mounted sensor whose body offset comes from
// configuration.
type Sensor string

const (
	SensorFrontCamera    Sensor = "front_camera"
	SensorVerticalCamera Sensor = "vertical_camera"
	SensorBarometer      Sensor = "barometer"
)

// Sensors returns the sensors fitted to a vehicle type, in broadcast order.
func (t VehicleType) Sensors() []Sensor {
	switch t {
	case MK2:
		return []Sensor{SensorFrontCamera, SensorVerticalCamera, SensorBarometer}
	default:
		return []Sensor{SensorFrontCamera, SensorBarometer}
	}
}

// LinkRole returns the frame role for the sensor's mechanical mount.
func (s Sensor) LinkRole() Role {
	switch s {
	case SensorFrontCamera:
		return RoleFrontCameraLink
	case SensorVerticalCamera:
		return RoleVerticalCameraLink
	default:
		return RoleBarometerLink
	}
}

// OpticalRole returns the optical-frame role for camera sensors. The second
// return is false for sensors without an optical frame.
func (s Sensor) OpticalRole() (Role, bool) {
	switch s {
	case SensorFrontCamera:
		return RoleFrontCameraFrame, true
	case SensorVerticalCamera:
		return RoleVerticalCameraFrame, true
	}
	return "", false
}

// Offset is a sensor mounting offset relative to the body frame: metres and
// intrinsic ZYX Euler radians.
type Offset struct {
	X, Y, Z          float64
	Roll, Pitch, Yaw float64
}

// Profile is the immutable per-vehicle identity resolved once at startup:
// name, hull type and every sensor mounting offset. Components receive a
// Profile explicitly instead of recovering vehicle identity from ambient
// process state.
type Profile struct {
	Name    string
	Type    VehicleType
	Offsets map[Sensor]Offset
}
