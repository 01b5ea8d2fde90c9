package main

import "math"

// degree to radian conversion factor
const to_rad = math.Pi / 180.0

// radian to degree conversion factor
const to_deg = 180.0 / math.Pi

// nominal module efficiency at STC, -
func get_eta_stc() float64 {
	return 0.14
}

// nominal operating cell temperature, degree C
func get_noct() float64 {
	return 45.0
}

// angular loss coefficient, -
func get_alpha_r() float64 {
	return 0.17
}

// power temperature coefficient, 1/K
func get_alpha_p() float64 {
	return -0.0045
}

// ground reflectance (albedo), -
func get_rho_g() float64 {
	return 0.2
}

// latitude of the tropics, deg
func get_tropic_latitude() float64 {
	return 23.45
}

// panel tilt of the fixed bifacial modes, deg
func get_bifacial_tilt() float64 {
	return 10.0
}

/*
Clamp v into [lo, hi].

Arguments of inverse trigonometric functions drift out of [-1, 1] by
floating round-off near the poles and the solstices; that noise is
clamped silently and never surfaced as an error.
*/
func _clamp(v float64, lo float64, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
