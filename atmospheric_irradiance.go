package main

import "math"

/*
Clear-sky atmospheric attenuation on a horizontal plane. Everything here
depends only on the day of year and the solar elevation, never on the
panel orientation.
*/

// AtmosphericIrradiance holds the clear-sky state of one sample.
type AtmosphericIrradiance struct {
	// apparent extraterrestrial flux, W/m2
	a float64
	// atmospheric optical depth, -
	k float64
	// air mass, -
	air_mass float64
	// direct normal (beam) irradiance, W/m2
	i_b float64
	// sky diffuse factor, -
	c float64
	// diffuse horizontal irradiance, W/m2
	i_dh float64
	// beam horizontal irradiance, W/m2
	i_bh float64
	// global horizontal irradiance, W/m2
	i_gh float64
}

/*
Calculate the clear-sky irradiance on a horizontal plane.

Args:

	n: day of year
	beta_deg: solar elevation, deg

Returns:

	AtmosphericIrradiance of the sample

Notes:

	Below-horizon samples (beta <= 0) short-circuit to all-zero state for
	every downstream stage.
*/
func calc_atmospheric_irradiance(n int, beta_deg float64) AtmosphericIrradiance {

	if beta_deg <= 0.0 {
		return AtmosphericIrradiance{}
	}

	// apparent extraterrestrial flux, W/m2
	a := _get_a_n(n)

	// optical depth, -
	k := _get_k_n(n)

	// air mass, -
	m := _get_air_mass(beta_deg)

	// direct normal irradiance, W/m2 (Eq. 12)
	i_b := a * math.Exp(-k*m)

	// sky diffuse factor, -
	c := _get_c_n(n)

	// diffuse horizontal irradiance, W/m2 (Eq. 16: a fraction of the beam)
	i_dh := c * i_b

	// beam horizontal irradiance, W/m2 (Eq. 13)
	i_bh := i_b * math.Sin(beta_deg*to_rad)

	return AtmosphericIrradiance{
		a:        a,
		k:        k,
		air_mass: m,
		i_b:      i_b,
		c:        c,
		i_dh:     i_dh,
		i_bh:     i_bh,
		i_gh:     i_bh + i_dh,
	}
}

/*
Calculate the apparent extraterrestrial flux.

Args:

	n: day of year

Returns:

	flux, W/m2

Notes:

	Eq. 9: A = 1160 + 75*sin(2*pi/365 * (n - 275))
*/
func _get_a_n(n int) float64 {
	return 1160.0 + 75.0*math.Sin(2.0*math.Pi/365.0*(float64(n)-275.0))
}

/*
Calculate the atmospheric optical depth.

Args:

	n: day of year

Returns:

	optical depth, -

Notes:

	Eq. 10: k = 0.174 + 0.035*sin(2*pi/365 * (n - 100))
*/
func _get_k_n(n int) float64 {
	return 0.174 + 0.035*math.Sin(2.0*math.Pi/365.0*(float64(n)-100.0))
}

/*
Calculate the air mass.

Args:

	beta_deg: solar elevation, deg

Returns:

	air mass, -

Notes:

	Eq. 11: m = 1/sin(beta), with sin(beta) floored at 0.01 (about half a
	degree of elevation) so the ratio never blows up at grazing angles.
*/
func _get_air_mass(beta_deg float64) float64 {
	sin_beta := math.Sin(beta_deg * to_rad)
	if sin_beta < 0.01 {
		sin_beta = 0.01
	}
	return 1.0 / sin_beta
}

/*
Calculate the sky diffuse factor.

Args:

	n: day of year

Returns:

	diffuse factor, -

Notes:

	Eq. 15: C = 0.095 + 0.04*sin(2*pi/365 * (n - 100))
*/
func _get_c_n(n int) float64 {
	return 0.095 + 0.04*math.Sin(2.0*math.Pi/365.0*(float64(n)-100.0))
}
