package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmbientTemperatureDeterministic(t *testing.T) {
	loc := Location{Latitude: -32.0, Longitude: 115.89, UTCOffset: 8.0}
	a := calc_ambient_temperature(loc, 18.0, 42, 14.5)
	b := calc_ambient_temperature(loc, 18.0, 42, 14.5)
	assert.Equal(t, a, b)
}

func TestAmbientTemperatureBounds(t *testing.T) {
	for _, lat := range []float64{-90.0, -32.0, 0.0, 52.5, 90.0} {
		loc := Location{Latitude: lat}
		for n := 1; n <= 365; n += 7 {
			for hour := 0.0; hour < 24.0; hour += 2.0 {
				temp := calc_ambient_temperature(loc, 18.0, n, hour)
				assert.GreaterOrEqual(t, temp, -50.0)
				assert.LessOrEqual(t, temp, 55.0)
			}
		}
	}
}

func TestDiurnalMinimumAtDawn(t *testing.T) {
	loc := Location{Latitude: 40.0}

	min_hour := 0.0
	min_temp := 999.0
	for hour := 0.0; hour < 24.0; hour += 1.0 {
		temp := calc_ambient_temperature(loc, 18.0, 196, hour)
		if temp < min_temp {
			min_temp = temp
			min_hour = hour
		}
	}
	assert.Equal(t, 6.0, min_hour)

	// the maximum falls twelve hours later
	assert.Greater(t, calc_ambient_temperature(loc, 18.0, 196, 18.0), calc_ambient_temperature(loc, 18.0, 196, 6.0))
}

func TestSeasonalCycleFollowsHemisphere(t *testing.T) {
	// mid-January noon is summer in Perth and winter in Berlin
	perth := Location{Latitude: -32.0}
	berlin := Location{Latitude: 52.5}

	perth_jan := calc_ambient_temperature(perth, 18.0, 15, 12.0)
	perth_jul := calc_ambient_temperature(perth, 18.0, 196, 12.0)
	assert.Greater(t, perth_jan, perth_jul)

	berlin_jan := calc_ambient_temperature(berlin, 10.0, 15, 12.0)
	berlin_jul := calc_ambient_temperature(berlin, 10.0, 196, 12.0)
	assert.Greater(t, berlin_jul, berlin_jan)
}

func TestAnnualSwingGrowsWithLatitude(t *testing.T) {
	tropics := Location{Latitude: 5.0}
	polar := Location{Latitude: 65.0}

	swing := func(loc Location) float64 {
		return calc_ambient_temperature(loc, 18.0, 196, 12.0) - calc_ambient_temperature(loc, 18.0, 15, 12.0)
	}

	// both are northern locations, so the swing is positive either way
	assert.Greater(t, swing(polar), swing(tropics))
}
