package main

import "math"

/*
Solar position for a single calendar sample.

Azimuth convention: 0 = north, +90 = east, -90 = west, +-180 = south.
The hour angle is positive before solar noon.
*/

// SolarPosition holds the solar geometry of one sample. All angles in degrees.
type SolarPosition struct {
	// solar declination, deg
	declination float64
	// equation of time correction, min
	equation_of_time float64
	// solar time, h
	solar_time float64
	// hour angle, deg
	hour_angle float64
	// solar elevation, deg (negative below the horizon)
	elevation float64
	// solar azimuth, deg
	azimuth float64
}

/*
Calculate the solar position.

Args:

	loc: location
	n: day of year (1/1 = 1)
	hour: local clock time, h (0-24, fractional)

Returns:

	SolarPosition of the sample
*/
func calc_solar_position(loc Location, n int, hour float64) SolarPosition {

	// solar declination, deg
	delta_deg := _get_delta_deg(n)

	// equation of time, min
	e_t_min := _get_e_t_min(n)

	// solar time, h
	solar_time := _get_solar_time(hour, loc.Longitude, loc.reference_meridian(), e_t_min)

	// hour angle, deg
	h_deg := _get_h_deg(solar_time)

	// solar elevation, deg
	beta_deg := _get_beta_deg(loc.Latitude, delta_deg, h_deg)

	// solar azimuth, deg
	phi_s_deg := _get_phi_s_deg(loc.Latitude, delta_deg, h_deg, beta_deg)

	return SolarPosition{
		declination:      delta_deg,
		equation_of_time: e_t_min,
		solar_time:       solar_time,
		hour_angle:       h_deg,
		elevation:        beta_deg,
		azimuth:          phi_s_deg,
	}
}

/*
Calculate the solar declination.

Args:

	n: day of year

Returns:

	declination, deg

Notes:

	Eq. 1: delta = 23.45 * sin(2*pi/365 * (n - 81))
*/
func _get_delta_deg(n int) float64 {
	return 23.45 * math.Sin(2.0*math.Pi/365.0*(float64(n)-81.0))
}

/*
Calculate the equation of time correction.

Args:

	n: day of year

Returns:

	correction, min

Notes:

	Eq. 4: E = 9.87*sin(2B) - 7.53*cos(B) - 1.5*sin(B)
	with B = 2*pi/364 * (n - 81), an empirical fit after Masters (2013).
*/
func _get_e_t_min(n int) float64 {
	b := 2.0 * math.Pi / 364.0 * (float64(n) - 81.0)
	return 9.87*math.Sin(2.0*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

/*
Calculate the solar time from the local clock time.

Args:

	hour: local clock time, h
	longitude: longitude, deg (east positive)
	meridian: reference meridian of the clock, deg
	e_t_min: equation of time correction, min

Returns:

	solar time, h

Notes:

	Eq. 3.1: ST = CT + [4 min/deg * (longitude - meridian) + E] / 60
	The signed longitude convention makes the same formula valid on both
	sides of the prime meridian.
*/
func _get_solar_time(hour float64, longitude float64, meridian float64, e_t_min float64) float64 {
	return hour + (4.0*(longitude-meridian)+e_t_min)/60.0
}

/*
Calculate the hour angle.

Args:

	solar_time: solar time, h

Returns:

	hour angle, deg (positive before solar noon)

Notes:

	Eq. 2: H = 15 * (12 - ST)
*/
func _get_h_deg(solar_time float64) float64 {
	return 15.0 * (12.0 - solar_time)
}

/*
Calculate the solar elevation.

Args:

	lat_deg: latitude, deg
	delta_deg: declination, deg
	h_deg: hour angle, deg

Returns:

	elevation, deg (negative when the sun is below the horizon)

Notes:

	Eq. 5: sin(beta) = cos(L)cos(delta)cos(H) + sin(L)sin(delta)
*/
func _get_beta_deg(lat_deg float64, delta_deg float64, h_deg float64) float64 {
	lat := lat_deg * to_rad
	delta := delta_deg * to_rad
	h := h_deg * to_rad

	sin_beta := math.Cos(lat)*math.Cos(delta)*math.Cos(h) + math.Sin(lat)*math.Sin(delta)

	return math.Asin(_clamp(sin_beta, -1.0, 1.0)) * to_deg
}

/*
Calculate the solar azimuth, including the quadrant correction.

Args:

	lat_deg: latitude, deg
	delta_deg: declination, deg
	h_deg: hour angle, deg
	beta_deg: elevation, deg

Returns:

	azimuth, deg in [-180, 180]

Notes:

	Eq. 6: sin(phi_s) = cos(delta)sin(H)/cos(beta) only yields |phi_s| <= 90.
	Eq. 6.1 decides whether the sun is actually on the far side of the
	east-west line: let C = [cos(H) >= tan(delta)/tan(L)]. For southern
	latitudes C true means the sun is within 90 deg of north and no
	adjustment is made; C false reflects phi_s to the obtuse value. For
	northern latitudes the branch is inverted. At the equator tan(L) = 0
	and the check value is taken as +-inf by the sign of tan(delta), which
	resolves to the equatorward quadrant.
*/
func _get_phi_s_deg(lat_deg float64, delta_deg float64, h_deg float64, beta_deg float64) float64 {
	delta := delta_deg * to_rad
	h := h_deg * to_rad

	cos_beta := math.Cos(beta_deg * to_rad)
	if cos_beta == 0.0 {
		// sun exactly at the zenith: the azimuth is degenerate, pick the
		// east-west direction by the sign of the hour angle
		if h_deg >= 0.0 {
			return 90.0
		}
		return -90.0
	}

	sin_phi_s := math.Cos(delta) * math.Sin(h) / cos_beta
	phi_s_deg := math.Asin(_clamp(sin_phi_s, -1.0, 1.0)) * to_deg

	// quadrant check value tan(delta)/tan(L), with the equatorial fallback
	var check float64
	tan_lat := math.Tan(lat_deg * to_rad)
	if tan_lat == 0.0 {
		check = math.Inf(1)
		if math.Tan(delta) < 0.0 {
			check = math.Inf(-1)
		}
	} else {
		check = math.Tan(delta) / tan_lat
	}

	condition_met := math.Cos(h) >= check

	// obtuse reflection represents |phi_s| > 90
	obtuse := func(phi float64) float64 {
		if phi > 0.0 {
			return 180.0 - phi
		}
		return -180.0 - phi
	}

	if lat_deg >= 0.0 {
		if condition_met {
			phi_s_deg = obtuse(phi_s_deg)
		}
	} else {
		if !condition_met {
			phi_s_deg = obtuse(phi_s_deg)
		}
	}

	return phi_s_deg
}
