package main

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

/*
Collector orientation strategies. Each strategy is a pure function of the
solar position, the location and the fixed configuration, producing the
panel tilt and azimuth fed into the incident-irradiance projection.
*/

// TrackingMode enumerates the collector orientation strategies.
type TrackingMode string

const (
	// flat panel, tilt 0
	TrackingHorizontal TrackingMode = "horizontal"
	// fixed tilt, azimuth follows the sun
	TrackingOneAxisAzimuth TrackingMode = "1axis_azimuth"
	// tilt follows the sun elevation, equator-facing azimuth
	TrackingOneAxisElevation TrackingMode = "1axis_elevation"
	// panel normal always points at the sun
	TrackingTwoAxis TrackingMode = "2axis"
	// rotation about a polar-aligned axis by the hour angle
	TrackingOneAxisPolar TrackingMode = "1axis_polar"
	// rotation about a horizontal north-south axis
	TrackingOneAxisHorizontal TrackingMode = "1axis_horizontal"
	// user-configured fixed tilt and azimuth
	TrackingFixedCustom TrackingMode = "fixed_custom"
	// two fixed faces at 10 deg looking east and west, outputs averaged
	TrackingFixedEastWest TrackingMode = "fixed_ew"
	// two fixed faces at 10 deg looking north and south, outputs averaged
	TrackingFixedNorthSouth TrackingMode = "fixed_ns"
)

func TrackingModeFromString(str string) TrackingMode {
	switch str {
	case "horizontal":
		return TrackingHorizontal
	case "1axis_azimuth":
		return TrackingOneAxisAzimuth
	case "1axis_elevation":
		return TrackingOneAxisElevation
	case "2axis":
		return TrackingTwoAxis
	case "1axis_polar":
		return TrackingOneAxisPolar
	case "1axis_horizontal":
		return TrackingOneAxisHorizontal
	case "fixed_custom":
		return TrackingFixedCustom
	case "fixed_ew":
		return TrackingFixedEastWest
	case "fixed_ns":
		return TrackingFixedNorthSouth
	default:
		panic("invalid tracking mode")
	}
}

// all modes, in reporting order
func all_tracking_modes() []TrackingMode {
	return []TrackingMode{
		TrackingHorizontal,
		TrackingOneAxisAzimuth,
		TrackingOneAxisElevation,
		TrackingTwoAxis,
		TrackingOneAxisPolar,
		TrackingOneAxisHorizontal,
		TrackingFixedCustom,
		TrackingFixedEastWest,
		TrackingFixedNorthSouth,
	}
}

// A bifacial mode evaluates two fixed faces and averages the two
// electrical outputs, not the two irradiances: the electrical response is
// nonlinear in irradiance and temperature.
func (m TrackingMode) is_bifacial() bool {
	return m == TrackingFixedEastWest || m == TrackingFixedNorthSouth
}

/*
Get the azimuths of the two faces of a bifacial mode.

Returns:

	azimuths of face A and face B, deg
*/
func (m TrackingMode) face_azimuths() (float64, float64) {
	switch m {
	case TrackingFixedEastWest:
		return 90.0, 270.0
	case TrackingFixedNorthSouth:
		return 0.0, 180.0
	default:
		panic("face_azimuths on a monofacial tracking mode")
	}
}

// PanelConfig carries the fixed angles the tracking strategies depend on.
type PanelConfig struct {
	// tilt of the 1-axis azimuth tracker, deg
	tracker_tilt_deg float64
	// tilt of the fixed custom panel, deg
	fixed_tilt_deg float64
	// azimuth of the fixed custom panel, deg
	fixed_azimuth_deg float64
}

/*
Get the default panel configuration of a location: the fixed panel and
the azimuth tracker are tilted at the latitude magnitude and face the
equator.
*/
func default_panel_config(loc Location) PanelConfig {
	return PanelConfig{
		tracker_tilt_deg:  math.Abs(loc.Latitude),
		fixed_tilt_deg:    math.Abs(loc.Latitude),
		fixed_azimuth_deg: loc.equator_facing_azimuth(),
	}
}

// PanelOrientation is the tilt/azimuth pair of one sample.
type PanelOrientation struct {
	// panel tilt, deg (0 = horizontal)
	sigma_deg float64
	// panel azimuth, deg
	phi_c_deg float64
}

/*
Calculate the panel orientation of a monofacial mode for one sample.

Args:

	pos: solar position of the sample
	loc: location
	cfg: fixed-orientation configuration

Returns:

	PanelOrientation of the sample
*/
func (m TrackingMode) orientation(pos SolarPosition, loc Location, cfg *PanelConfig) PanelOrientation {
	switch m {
	case TrackingHorizontal:
		return PanelOrientation{sigma_deg: 0.0, phi_c_deg: 0.0}
	case TrackingOneAxisAzimuth:
		return _one_axis_azimuth_orientation(pos, cfg.tracker_tilt_deg)
	case TrackingOneAxisElevation:
		return _one_axis_elevation_orientation(pos, loc)
	case TrackingTwoAxis:
		return _two_axis_orientation(pos)
	case TrackingOneAxisPolar:
		return _one_axis_polar_orientation(pos, loc)
	case TrackingOneAxisHorizontal:
		return _one_axis_horizontal_orientation(pos)
	case TrackingFixedCustom:
		return PanelOrientation{sigma_deg: cfg.fixed_tilt_deg, phi_c_deg: cfg.fixed_azimuth_deg}
	default:
		panic("orientation on a bifacial tracking mode")
	}
}

/*
1-axis azimuth tracking: the panel keeps a fixed tilt and swings its
azimuth with the sun.

Args:

	pos: solar position
	tilt_deg: fixed tilt of the tracker, deg
*/
func _one_axis_azimuth_orientation(pos SolarPosition, tilt_deg float64) PanelOrientation {
	return PanelOrientation{sigma_deg: tilt_deg, phi_c_deg: pos.azimuth}
}

/*
1-axis elevation tracking: the panel rotates on an east-west axis so its
tilt is the complement of the solar elevation; the azimuth faces the
equator, except between the tropics where the facing flips whenever the
declination carries the sun past the local zenith.

Args:

	pos: solar position
	loc: location
*/
func _one_axis_elevation_orientation(pos SolarPosition, loc Location) PanelOrientation {

	var phi_c_deg float64
	switch {
	case !loc.is_between_tropics():
		// outside the tropics the sun never crosses the zenith
		phi_c_deg = loc.equator_facing_azimuth()
	case math.Abs(loc.Latitude) < 0.1:
		// at the equator face north always, avoiding equinox flips
		phi_c_deg = 0.0
	case loc.is_southern_hemisphere():
		// southern tropics: sun in the northern sky unless a positive
		// declination exceeds the latitude magnitude
		if pos.declination > 0.0 && math.Abs(pos.declination) > math.Abs(loc.Latitude) {
			phi_c_deg = 0.0
		} else {
			phi_c_deg = 180.0
		}
	default:
		// northern tropics, mirrored
		if pos.declination < 0.0 && math.Abs(pos.declination) > math.Abs(loc.Latitude) {
			phi_c_deg = 180.0
		} else {
			phi_c_deg = 0.0
		}
	}

	return PanelOrientation{sigma_deg: 90.0 - pos.elevation, phi_c_deg: phi_c_deg}
}

// 2-axis tracking: the panel normal points straight at the sun, so
// cos(theta) = cos^2(beta) + sin^2(beta) = 1 for every daylight sample.
func _two_axis_orientation(pos SolarPosition) PanelOrientation {
	return PanelOrientation{sigma_deg: 90.0 - pos.elevation, phi_c_deg: pos.azimuth}
}

/*
1-axis polar tracking: the panel rotates by the hour angle about an axis
pointing at the celestial pole. The axis tilt equals the latitude
magnitude; the axis azimuth is 180 deg for southern latitudes and 0 deg
otherwise, so the panel faces the equator at solar noon.

Args:

	pos: solar position
	loc: location

Notes:

	The noon panel normal n0 is perpendicular to the axis, at elevation
	pi/2 - axis tilt and equator-facing azimuth. Rotating n0 about the
	unit axis k by rho uses the Rodrigues form

	    n = n0*cos(rho) + (k x n0)*sin(rho) + k*(k.n0)*(1 - cos(rho))

	whose last term vanishes because k.n0 = 0. rho is the hour angle,
	sign-flipped when the axis has a southward horizontal component so the
	rotation direction matches the sky in both hemispheres. The tilt is
	recovered as arccos(n_z) and the azimuth as atan2(n_x, n_y).
*/
func _one_axis_polar_orientation(pos SolarPosition, loc Location) PanelOrientation {

	// axis tilt from the horizontal, rad
	axis_tilt := math.Abs(loc.Latitude) * to_rad

	// axis azimuth, rad (opposite the noon panel azimuth)
	axis_az := 0.0
	if loc.is_southern_hemisphere() {
		axis_az = 180.0 * to_rad
	}

	// unit rotation axis (x = east, y = north, z = up)
	k := r3.Vec{
		X: math.Cos(axis_tilt) * math.Sin(axis_az),
		Y: math.Cos(axis_tilt) * math.Cos(axis_az),
		Z: math.Sin(axis_tilt),
	}

	// noon panel normal, perpendicular to the axis
	noon_az := loc.equator_facing_azimuth() * to_rad
	noon_elev := math.Pi/2.0 - axis_tilt
	n0 := r3.Vec{
		X: math.Cos(noon_elev) * math.Sin(noon_az),
		Y: math.Cos(noon_elev) * math.Cos(noon_az),
		Z: math.Sin(noon_elev),
	}

	// rotation angle, rad
	rho := pos.hour_angle * to_rad
	if k.Y < 0.0 {
		rho = -rho
	}

	n := r3.Add(r3.Scale(math.Cos(rho), n0), r3.Scale(math.Sin(rho), r3.Cross(k, n0)))

	return PanelOrientation{
		sigma_deg: math.Acos(_clamp(n.Z, -1.0, 1.0)) * to_deg,
		phi_c_deg: math.Atan2(n.X, n.Y) * to_deg,
	}
}

/*
1-axis horizontal tracking on a north-south axis: the panel rolls
east-to-west through the day. The tilt is the hour angle magnitude capped
at 90 deg; the panel faces east before solar noon (H > 0) and west after.

Args:

	pos: solar position
*/
func _one_axis_horizontal_orientation(pos SolarPosition) PanelOrientation {
	sigma_deg := math.Abs(pos.hour_angle)
	if sigma_deg > 90.0 {
		sigma_deg = 90.0
	}

	phi_c_deg := -90.0
	if pos.hour_angle > 0.0 {
		phi_c_deg = 90.0
	}

	return PanelOrientation{sigma_deg: sigma_deg, phi_c_deg: phi_c_deg}
}
