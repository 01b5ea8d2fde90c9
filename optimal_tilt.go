package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
Bounded local search over the tilt of an equator-facing fixed panel,
using the same per-step pipeline as the annual sweep as the inner
evaluator.
*/

// OptimizationObjective selects what the tilt search maximizes.
type OptimizationObjective string

const (
	// maximize electrical energy, thermal and angular losses included
	ObjectiveElectrical OptimizationObjective = "electrical"
	// maximize incident irradiance, the geometric optimum
	ObjectiveIrradiance OptimizationObjective = "irradiance"
)

func ObjectiveFromString(str string) OptimizationObjective {
	switch str {
	case "electrical":
		return ObjectiveElectrical
	case "irradiance":
		return ObjectiveIrradiance
	default:
		panic("invalid optimization objective")
	}
}

// one precomputed daylight sample of the search
type daylightSample struct {
	// solar elevation, deg
	beta float64
	// solar azimuth, deg
	phi_s float64
	// direct normal irradiance, W/m2
	i_b float64
	// sky diffuse factor, -
	c float64
	// ambient temperature, degree C
	t_amb float64
}

/*
Search the tilt maximizing the annual objective.

Args:

	cfg: simulation configuration (location, module, calendar range)
	objective: electrical or irradiance

Returns:

	(1) optimal tilt, deg
	(2) annual electrical energy at that tilt, kWh/m2
	(3) configuration error, if any

Notes:

	The panel faces the equator; candidate tilts are the whole degrees of
	[max(0, floor(|latitude|) - 5), floor(|latitude|) + 5]. Ties go to the
	first candidate found, so to the lowest tilt. The electrical energy at
	the optimal tilt is returned for both objectives.
*/
func calc_optimal_tilt(cfg *SimulationConfig, objective OptimizationObjective) (int, float64, error) {

	if err := cfg.validate(); err != nil {
		return 0, 0.0, err
	}

	// geometry, irradiance and temperature do not depend on the tilt:
	// precompute them once for the daylight steps only
	samples := _collect_daylight_samples(cfg)

	phi_c := cfg.location.equator_facing_azimuth()

	lat_abs := int(math.Abs(cfg.location.Latitude))
	start_tilt := lat_abs - 5
	if start_tilt < 0 {
		start_tilt = 0
	}
	end_tilt := lat_abs + 5

	best_tilt := start_tilt
	best_value := 0.0

	for tilt := start_tilt; tilt <= end_tilt; tilt++ {
		value := _evaluate_tilt(samples, float64(tilt), phi_c, cfg, objective)
		if value > best_value {
			best_value = value
			best_tilt = tilt
		}
	}

	// the electrical yield at the winning tilt is reported for both
	// objectives, so the two are comparable
	yield := _evaluate_tilt(samples, float64(best_tilt), phi_c, cfg, ObjectiveElectrical)

	return best_tilt, yield, nil
}

/*
Collect the orientation-independent state of every daylight step of the
calendar range.
*/
func _collect_daylight_samples(cfg *SimulationConfig) []daylightSample {

	w := calc_annual_weather(cfg)

	samples := make([]daylightSample, 0, len(w.day_ns)/2)
	for i := range w.day_ns {
		if w.pos_ns[i].elevation <= 0.0 {
			continue
		}
		samples = append(samples, daylightSample{
			beta:  w.pos_ns[i].elevation,
			phi_s: w.pos_ns[i].azimuth,
			i_b:   w.atm_ns[i].i_b,
			c:     w.atm_ns[i].c,
			t_amb: w.t_amb_ns[i],
		})
	}

	return samples
}

/*
Evaluate one tilt candidate.

Args:

	samples: precomputed daylight samples
	tilt_deg: candidate tilt, deg
	phi_c_deg: panel azimuth, deg
	cfg: simulation configuration
	objective: electrical or irradiance

Returns:

	annual objective value at the candidate, kWh/m2
*/
func _evaluate_tilt(
	samples []daylightSample, tilt_deg float64, phi_c_deg float64,
	cfg *SimulationConfig, objective OptimizationObjective,
) float64 {

	dt := cfg.itv.get_time()

	values := make([]float64, len(samples))
	for i, s := range samples {
		inc := calc_incident_irradiance(s.beta, s.phi_s, tilt_deg, phi_c_deg, s.i_b, s.c, cfg.rho_g)

		if objective == ObjectiveIrradiance {
			values[i] = inc.i_total
			continue
		}

		perf := cfg.module.calc_performance(inc.i_total, inc.cos_theta, s.t_amb)
		values[i] = perf.p_out
	}

	return floats.Sum(values) * dt / 1000.0
}
