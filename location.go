package main

import (
	"fmt"
	"math"
)

// Location is the geographic position of the collector.
type Location struct {
	// latitude, deg (north positive)
	Latitude float64 `json:"latitude"`
	// longitude, deg (east positive)
	Longitude float64 `json:"longitude"`
	// UTC offset of the local clock, h
	UTCOffset float64 `json:"utc_offset"`
}

/*
Validate the location.

Returns:

	error when the latitude or longitude is outside its domain

Notes:

	Rejection happens here, before any sample is computed. |latitude| = 90
	is accepted; the tangent-based quadrant check guards the poles itself.
*/
func (l Location) validate() error {
	if math.Abs(l.Latitude) > 90.0 {
		return fmt.Errorf("latitude %f is out of range [-90, 90]", l.Latitude)
	}
	if math.Abs(l.Longitude) > 180.0 {
		return fmt.Errorf("longitude %f is out of range [-180, 180]", l.Longitude)
	}
	if math.Abs(l.UTCOffset) > 14.0 {
		return fmt.Errorf("utc offset %f is out of range [-14, 14]", l.UTCOffset)
	}
	return nil
}

/*
Get the reference meridian of the local clock.

Returns:

	longitude of the reference meridian, deg

Notes:

	15 degrees per hour of UTC offset, signed with the east-positive
	longitude convention so one formula serves both sides of the prime
	meridian.
*/
func (l Location) reference_meridian() float64 {
	return 15.0 * l.UTCOffset
}

// The equator itself is treated as northern (no hemisphere bias).
func (l Location) is_southern_hemisphere() bool {
	return l.Latitude < 0.0
}

func (l Location) is_between_tropics() bool {
	return math.Abs(l.Latitude) < get_tropic_latitude()
}

/*
Get the azimuth a fixed panel faces so that it points at the equator.

Returns:

	panel azimuth, deg (0 = north for southern latitudes, 180 = south otherwise)
*/
func (l Location) equator_facing_azimuth() float64 {
	if l.is_southern_hemisphere() {
		return 0.0
	}
	return 180.0
}
