package frames

import (
	"github.com/underwave-robotics/tfbridge/transform"
)

// Role enumerates the frame roles a vehicle can expose.
type Role string

const (
	RoleBase                Role = "base_link"
	RoleBaseFRD             Role = "base_link_frd"
	RoleBaseGroundTruth     Role = "base_link_gt"
	RoleFrontCameraLink     Role = "front_camera_link"
	RoleFrontCameraFrame    Role = "front_camera_frame"
	RoleVerticalCameraLink  Role = "vertical_camera_link"
	RoleVerticalCameraFrame Role = "vertical_camera_frame"
	RoleBarometerLink       Role = "barometer_link"
)

// rolesByType lists the roles valid for each vehicle type. Roles common to
// every type are listed in commonRoles.
var commonRoles = []Role{
	RoleBase, RoleBaseFRD, RoleBaseGroundTruth,
	RoleFrontCameraLink, RoleFrontCameraFrame, RoleBarometerLink,
}

var rolesByType = map[VehicleType][]Role{
	MK1: commonRoles,
	MK2: append([]Role{RoleVerticalCameraLink, RoleVerticalCameraFrame}, commonRoles...),
}

// Catalog produces canonical frame identifiers for one vehicle instance.
// IDs are deterministic and injective per (vehicle, role).
type Catalog struct {
	vehicle string
	vtype   VehicleType
}

// NewCatalog builds a catalog for the profile's vehicle.
func NewCatalog(p Profile) Catalog {
	return Catalog{vehicle: p.Name, vtype: p.Type}
}

// FrameID returns the canonical identifier for a role, failing with
// InvalidRoleError when the role does not exist for the vehicle type
// (e.g. a vertical-camera role on a single-camera hull).
func (c Catalog) FrameID(role Role) (transform.FrameID, error) {
	for _, r := range rolesByType[c.vtype] {
		if r == role {
			return transform.FrameID(c.vehicle + "/" + string(role)), nil
		}
	}
	return "", &transform.InvalidRoleError{Role: string(role), VehicleType: string(c.vtype)}
}

// MustFrameID is FrameID for roles that exist on every vehicle type.
// Requesting an invalid role is a programming error, so it panics.
func (c Catalog) MustFrameID(role Role) transform.FrameID {
	id, err := c.FrameID(role)
	if err != nil {
		panic(err)
	}
	return id
}

// Map is the shared local navigation frame (ENU), parent of the dynamic
// body edges.
func (c Catalog) Map() transform.FrameID { return "map" }

// MapNED is the autopilot navigation frame.
func (c Catalog) MapNED() transform.FrameID { return "map_ned" }

// MapGroundTruth is the navigation frame for deployments that keep the
// ground-truth tree separate from the estimated tree.
func (c Catalog) MapGroundTruth() transform.FrameID { return "map_gt" }
