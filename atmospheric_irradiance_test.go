package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtmosphericIrradianceBelowHorizon(t *testing.T) {
	for _, beta := range []float64{0.0, -0.001, -15.0, -90.0} {
		atm := calc_atmospheric_irradiance(172, beta)
		assert.Zero(t, atm.i_b)
		assert.Zero(t, atm.i_dh)
		assert.Zero(t, atm.i_bh)
		assert.Zero(t, atm.i_gh)
	}
}

func TestAirMass(t *testing.T) {
	// overhead sun traverses exactly one atmosphere
	assert.InDelta(t, 1.0, _get_air_mass(90.0), 1e-9)

	// 30 deg elevation doubles the path length
	assert.InDelta(t, 2.0, _get_air_mass(30.0), 1e-9)

	// the grazing floor caps the ratio at 100
	assert.InDelta(t, 100.0, _get_air_mass(0.1), 1e-9)
	assert.InDelta(t, 100.0, _get_air_mass(0.01), 1e-9)
}

func TestApparentFluxAndOpticalDepthRanges(t *testing.T) {
	for n := 1; n <= 365; n++ {
		a := _get_a_n(n)
		assert.GreaterOrEqual(t, a, 1085.0)
		assert.LessOrEqual(t, a, 1235.0)

		k := _get_k_n(n)
		assert.GreaterOrEqual(t, k, 0.139)
		assert.LessOrEqual(t, k, 0.209)

		c := _get_c_n(n)
		assert.GreaterOrEqual(t, c, 0.055)
		assert.LessOrEqual(t, c, 0.135)
	}
}

func TestBeamIrradianceAttenuated(t *testing.T) {
	atm := calc_atmospheric_irradiance(172, 60.0)

	// the beam never exceeds the apparent extraterrestrial flux
	assert.Greater(t, atm.i_b, 0.0)
	assert.Less(t, atm.i_b, atm.a)

	// a lower sun sees more air and a weaker beam
	lower := calc_atmospheric_irradiance(172, 20.0)
	assert.Less(t, lower.i_b, atm.i_b)
}

func TestHorizontalComponentsConsistent(t *testing.T) {
	atm := calc_atmospheric_irradiance(100, 45.0)

	assert.InDelta(t, atm.i_b*math.Sin(45.0*to_rad), atm.i_bh, 1e-9)
	assert.InDelta(t, atm.c*atm.i_b, atm.i_dh, 1e-9)
	assert.InDelta(t, atm.i_bh+atm.i_dh, atm.i_gh, 1e-9)
}
