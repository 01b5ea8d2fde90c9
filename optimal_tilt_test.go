package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveFromString(t *testing.T) {
	assert.Equal(t, ObjectiveElectrical, ObjectiveFromString("electrical"))
	assert.Equal(t, ObjectiveIrradiance, ObjectiveFromString("irradiance"))
	assert.Panics(t, func() { ObjectiveFromString("profit") })
}

func TestOptimalTiltStaysInCandidateWindow(t *testing.T) {
	for _, lat := range []float64{-32.0, 40.0} {
		cfg := new_simulation_config(Location{Latitude: lat})

		for _, objective := range []OptimizationObjective{ObjectiveElectrical, ObjectiveIrradiance} {
			tilt, yield, err := calc_optimal_tilt(cfg, objective)
			require.NoError(t, err)

			lat_abs := int(lat)
			if lat_abs < 0 {
				lat_abs = -lat_abs
			}
			assert.GreaterOrEqual(t, tilt, lat_abs-5, "lat %f objective %s", lat, objective)
			assert.LessOrEqual(t, tilt, lat_abs+5, "lat %f objective %s", lat, objective)

			// the reported yield is always the electrical one
			assert.Greater(t, yield, 100.0)
			assert.Less(t, yield, 500.0)
		}
	}
}

func TestOptimalTiltNearEquator(t *testing.T) {
	cfg := new_simulation_config(Location{Latitude: 2.0})

	tilt, _, err := calc_optimal_tilt(cfg, ObjectiveIrradiance)
	require.NoError(t, err)

	// the candidate window is clipped at horizontal
	assert.GreaterOrEqual(t, tilt, 0)
	assert.LessOrEqual(t, tilt, 7)
}

func TestOptimalTiltDeterministic(t *testing.T) {
	cfg := new_simulation_config(Location{Latitude: -32.0, Longitude: 115.89, UTCOffset: 8.0})

	tilt_a, yield_a, err := calc_optimal_tilt(cfg, ObjectiveElectrical)
	require.NoError(t, err)
	tilt_b, yield_b, err := calc_optimal_tilt(cfg, ObjectiveElectrical)
	require.NoError(t, err)

	assert.Equal(t, tilt_a, tilt_b)
	assert.Equal(t, yield_a, yield_b)
}

func TestOptimalTiltBeatsTheWindowEdges(t *testing.T) {
	cfg := new_simulation_config(Location{Latitude: -32.0, Longitude: 115.89, UTCOffset: 8.0})
	samples := _collect_daylight_samples(cfg)
	phi_c := cfg.location.equator_facing_azimuth()

	tilt, _, err := calc_optimal_tilt(cfg, ObjectiveElectrical)
	require.NoError(t, err)

	best := _evaluate_tilt(samples, float64(tilt), phi_c, cfg, ObjectiveElectrical)
	for _, candidate := range []float64{27.0, 37.0} {
		assert.GreaterOrEqual(t, best, _evaluate_tilt(samples, candidate, phi_c, cfg, ObjectiveElectrical))
	}
}

func TestOptimalTiltRejectsInvalidConfig(t *testing.T) {
	cfg := new_simulation_config(Location{Latitude: 100.0})
	_, _, err := calc_optimal_tilt(cfg, ObjectiveElectrical)
	assert.Error(t, err)
}

func TestOptimalTiltSeedsTheAzimuthTracker(t *testing.T) {
	// the search result feeds the 1-axis azimuth tracker tilt, so a run
	// seeded with it never falls below the default-tilt run by much
	cfg := new_simulation_config(Location{Latitude: -32.0, Longitude: 115.89, UTCOffset: 8.0})
	cfg.modes = []TrackingMode{TrackingOneAxisAzimuth, TrackingTwoAxis}

	tilt, _, err := calc_optimal_tilt(cfg, ObjectiveElectrical)
	require.NoError(t, err)

	cfg.panel.tracker_tilt_deg = float64(tilt)
	profile, err := simulate(cfg)
	require.NoError(t, err)

	s := profile.annual_summary(TrackingOneAxisAzimuth)
	assert.Greater(t, s.ElectricalEnergy, 0.0)
	assert.Greater(t, s.PerformanceRatio, 85.0, "an azimuth tracker at the optimal tilt tracks the 2-axis yield closely")
	assert.Less(t, s.PerformanceRatio, 100.0)
}
