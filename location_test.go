package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationValidate(t *testing.T) {
	assert.NoError(t, Location{Latitude: -32.0, Longitude: 115.89, UTCOffset: 8.0}.validate())
	assert.NoError(t, Location{Latitude: 90.0, Longitude: -180.0, UTCOffset: -12.0}.validate())

	assert.Error(t, Location{Latitude: 90.5}.validate())
	assert.Error(t, Location{Longitude: 181.0}.validate())
	assert.Error(t, Location{UTCOffset: 15.0}.validate())
}

func TestReferenceMeridian(t *testing.T) {
	assert.Equal(t, 120.0, Location{UTCOffset: 8.0}.reference_meridian())
	assert.Equal(t, -75.0, Location{UTCOffset: -5.0}.reference_meridian())
	assert.Equal(t, 82.5, Location{UTCOffset: 5.5}.reference_meridian())
}

func TestHemispherePredicates(t *testing.T) {
	assert.True(t, Location{Latitude: -32.0}.is_southern_hemisphere())
	assert.False(t, Location{Latitude: 0.0}.is_southern_hemisphere(), "the equator counts as northern")
	assert.False(t, Location{Latitude: 52.5}.is_southern_hemisphere())

	assert.True(t, Location{Latitude: 12.4}.is_between_tropics())
	assert.True(t, Location{Latitude: -23.0}.is_between_tropics())
	assert.False(t, Location{Latitude: 23.45}.is_between_tropics())
	assert.False(t, Location{Latitude: -32.0}.is_between_tropics())
}

func TestEquatorFacingAzimuth(t *testing.T) {
	assert.Equal(t, 0.0, Location{Latitude: -32.0}.equator_facing_azimuth())
	assert.Equal(t, 180.0, Location{Latitude: 52.5}.equator_facing_azimuth())
	assert.Equal(t, 180.0, Location{Latitude: 0.0}.equator_facing_azimuth())
}
