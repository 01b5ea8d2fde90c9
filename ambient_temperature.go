package main

import "math"

/*
Synthetic ambient temperature: an annual cosine cycle plus a diurnal
cosine cycle, both deterministic functions of (latitude, day, hour).
No state is kept between samples.
*/

// base amplitude of the annual cycle, K
func get_annual_amplitude_base() float64 {
	return 10.0
}

// base amplitude of the diurnal cycle, K
func get_diurnal_amplitude_base() float64 {
	return 8.0
}

// default annual mean temperature, degree C
func get_t_mean_default() float64 {
	return 18.0
}

/*
Calculate the ambient temperature.

Args:

	loc: location
	t_mean: annual mean temperature, degree C
	n: day of year
	hour: local clock time, h

Returns:

	ambient temperature, degree C

Notes:

	The annual cycle peaks in the local summer (day 196 in the northern
	hemisphere, day 15 in the southern) with an amplitude scaled by
	(1 + 0.3*|latitude|/90). The diurnal cycle has its minimum at 06:00
	and an amplitude that follows the magnitude of the annual cosine, so
	the daily swing is widest near the solstices and smallest near the
	equinoxes. The result is clamped to [-50, 55] degree C.
*/
func calc_ambient_temperature(loc Location, t_mean float64, n int, hour float64) float64 {

	// peak-summer day of year
	peak_day := 196.0
	if loc.is_southern_hemisphere() {
		peak_day = 15.0
	}

	// annual phase cosine, - (1 at the summer solstice, -1 at the winter one)
	cos_annual := math.Cos(2.0 * math.Pi * (float64(n) - peak_day) / 365.0)

	// annual amplitude, K
	a_annual := get_annual_amplitude_base() * (1.0 + 0.3*math.Abs(loc.Latitude)/90.0)

	// seasonal component, degree C
	t_seasonal := t_mean + a_annual*cos_annual

	// diurnal amplitude, K
	a_diurnal := get_diurnal_amplitude_base() * (0.5 + 0.5*math.Abs(cos_annual))

	// diurnal component, K (minimum at 06:00, maximum at 18:00)
	t_diurnal := -a_diurnal * math.Cos(2.0*math.Pi*(hour-6.0)/24.0)

	return _clamp(t_seasonal+t_diurnal, -50.0, 55.0)
}
