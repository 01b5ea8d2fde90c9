package main

import "math"

/*
Projection of beam, sky diffuse and ground-reflected irradiance onto an
arbitrarily tilted and oriented plane. The routine is pure and
orientation-agnostic; every tracking mode feeds its own tilt and azimuth
into the same formula.
*/

// IncidentIrradiance holds the irradiance striking a tilted plane.
type IncidentIrradiance struct {
	// total incident irradiance, W/m2
	i_total float64
	// beam component, W/m2
	i_beam float64
	// sky diffuse component, W/m2
	i_diffuse float64
	// ground-reflected component, W/m2
	i_reflected float64
	// cosine of the angle of incidence, - (clamped to >= 0)
	cos_theta float64
}

/*
Calculate the incident irradiance on a tilted plane.

Args:

	beta_deg: solar elevation, deg
	phi_s_deg: solar azimuth, deg
	sigma_deg: panel tilt, deg (0 = horizontal, 90 = vertical)
	phi_c_deg: panel azimuth, deg
	i_b: direct normal irradiance, W/m2
	c: sky diffuse factor, -
	rho: ground reflectance, -

Returns:

	IncidentIrradiance of the sample
*/
func calc_incident_irradiance(
	beta_deg, phi_s_deg, sigma_deg, phi_c_deg float64,
	i_b float64, c float64, rho float64,
) IncidentIrradiance {

	beta := beta_deg * to_rad
	sigma := sigma_deg * to_rad

	// cosine of the angle of incidence, -
	cos_theta := _get_cos_theta(beta, phi_s_deg*to_rad, sigma, phi_c_deg*to_rad)

	// beam component, W/m2 (Eq. 14)
	i_bc := i_b * cos_theta

	// sky diffuse component, W/m2
	i_dc := _get_i_dc(i_b, c, sigma)

	// ground-reflected component, W/m2
	i_rc := _get_i_rc(i_b, c, rho, beta, sigma)

	return IncidentIrradiance{
		i_total:     i_bc + i_dc + i_rc,
		i_beam:      i_bc,
		i_diffuse:   i_dc,
		i_reflected: i_rc,
		cos_theta:   cos_theta,
	}
}

/*
Calculate the cosine of the angle of incidence.

Args:

	beta: solar elevation, rad
	phi_s: solar azimuth, rad
	sigma: panel tilt, rad
	phi_c: panel azimuth, rad

Returns:

	cos(theta), - (clamped to >= 0; the sun cannot illuminate the back
	of the panel)

Notes:

	Eq. 8: cos(theta) = cos(beta)cos(phi_s - phi_c)sin(sigma)
	                  + sin(beta)cos(sigma)
*/
func _get_cos_theta(beta, phi_s, sigma, phi_c float64) float64 {
	cos_theta := math.Cos(beta)*math.Cos(phi_s-phi_c)*math.Sin(sigma) + math.Sin(beta)*math.Cos(sigma)
	if cos_theta < 0.0 {
		cos_theta = 0.0
	}
	return cos_theta
}

/*
Calculate the sky diffuse component on the tilted plane.

Args:

	i_b: direct normal irradiance, W/m2
	c: sky diffuse factor, -
	sigma: panel tilt, rad

Returns:

	diffuse component, W/m2

Notes:

	Eq. 17, isotropic sky: Idc = C*Ib*(1 + cos(sigma))/2. Full diffuse on
	a horizontal panel, half of it on a vertical one.
*/
func _get_i_dc(i_b float64, c float64, sigma float64) float64 {
	return c * i_b * (1.0 + math.Cos(sigma)) / 2.0
}

/*
Calculate the ground-reflected component on the tilted plane.

Args:

	i_b: direct normal irradiance, W/m2
	c: sky diffuse factor, -
	rho: ground reflectance, -
	beta: solar elevation, rad
	sigma: panel tilt, rad

Returns:

	reflected component, W/m2

Notes:

	Eq. 18: Irc = rho*Ib*(sin(beta) + C)*(1 - cos(sigma))/2. Zero on a
	horizontal panel, maximal on a vertical one.
*/
func _get_i_rc(i_b float64, c float64, rho float64, beta float64, sigma float64) float64 {
	return rho * i_b * (math.Sin(beta) + c) * (1.0 - math.Cos(sigma)) / 2.0
}
