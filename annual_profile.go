package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
Annual sweep: every step of every day in the calendar range, for every
configured orientation mode, running geometry -> atmosphere -> tracking
-> projection -> electrical performance and accumulating per-mode energy
totals. Every per-sample result is transient; only the per-mode series
and totals owned by the profile survive a run.
*/

// SimulationConfig is the full configuration surface of one run.
type SimulationConfig struct {
	location Location
	itv      Interval
	// calendar range, day of year (inclusive)
	day_start int
	day_end   int
	// orientation modes to evaluate
	modes []TrackingMode
	// module electrical constants
	module PVModule
	// fixed panel angles
	panel PanelConfig
	// ground reflectance, -
	rho_g float64
	// annual mean ambient temperature, degree C
	t_mean float64
}

/*
Get the default simulation configuration of a location: a full-year
hourly sweep over all nine modes with the default module constants.
*/
func new_simulation_config(loc Location) *SimulationConfig {
	return &SimulationConfig{
		location:  loc,
		itv:       IntervalH1,
		day_start: 1,
		day_end:   365,
		modes:     all_tracking_modes(),
		module:    default_pv_module(),
		panel:     default_panel_config(loc),
		rho_g:     get_rho_g(),
		t_mean:    get_t_mean_default(),
	}
}

/*
Validate the configuration.

Returns:

	error describing the first invalid option

Notes:

	Validation-time rejection happens before any sample is computed;
	numerical edge cases inside the sweep are never errors.
*/
func (c *SimulationConfig) validate() error {
	if err := c.location.validate(); err != nil {
		return err
	}
	if c.day_start < 1 || c.day_end > 365 || c.day_start > c.day_end {
		return fmt.Errorf("day range [%d, %d] is out of range [1, 365]", c.day_start, c.day_end)
	}
	if len(c.modes) == 0 {
		return fmt.Errorf("no tracking mode configured")
	}
	if c.rho_g < 0.0 || c.rho_g > 1.0 {
		return fmt.Errorf("ground reflectance %f is out of range [0, 1]", c.rho_g)
	}
	if c.module.eta <= 0.0 || c.module.eta > 1.0 {
		return fmt.Errorf("module efficiency %f is out of range (0, 1]", c.module.eta)
	}
	if c.module.alpha_r <= 0.0 {
		return fmt.Errorf("angular loss coefficient %f must be positive", c.module.alpha_r)
	}
	return nil
}

// number of steps in the configured calendar range
func (c *SimulationConfig) n_steps() int {
	return (c.day_end - c.day_start + 1) * 24 * c.itv.get_n_hour()
}

/*
Orientation-independent state of every step of the sweep, precomputed
once and shared by all modes and by the tilt search.
*/
type annualWeather struct {
	// day of year, [n]
	day_ns []int
	// local clock time, h, [n]
	hour_ns []float64
	// solar position, [n]
	pos_ns []SolarPosition
	// clear-sky state, [n]
	atm_ns []AtmosphericIrradiance
	// ambient temperature, degree C, [n]
	t_amb_ns []float64
	// sun up at the step start or at the next step start, [n]
	daylight_ns []bool
	// number of daylight steps
	n_daylight int
}

/*
Precompute the orientation-independent series of the sweep.

Args:

	cfg: simulation configuration

Returns:

	annualWeather with one entry per step

Notes:

	A step counts as daylight when the sun is up at its start or at the
	start of the following step, so the partial light of rising and
	setting transitions is kept.
*/
func calc_annual_weather(cfg *SimulationConfig) *annualWeather {

	n_steps := cfg.n_steps()
	n_hour := cfg.itv.get_n_hour()
	dt := cfg.itv.get_time()

	w := &annualWeather{
		day_ns:      make([]int, n_steps),
		hour_ns:     make([]float64, n_steps),
		pos_ns:      make([]SolarPosition, n_steps),
		atm_ns:      make([]AtmosphericIrradiance, n_steps),
		t_amb_ns:    make([]float64, n_steps),
		daylight_ns: make([]bool, n_steps),
	}

	i := 0
	for day := cfg.day_start; day <= cfg.day_end; day++ {
		for j := 0; j < 24*n_hour; j++ {
			hour := float64(j) * dt

			pos := calc_solar_position(cfg.location, day, hour)

			// geometry at the next step start, for the transition rule
			pos_next := calc_solar_position(cfg.location, day, hour+dt)

			w.day_ns[i] = day
			w.hour_ns[i] = hour
			w.pos_ns[i] = pos
			w.atm_ns[i] = calc_atmospheric_irradiance(day, pos.elevation)
			w.t_amb_ns[i] = calc_ambient_temperature(cfg.location, cfg.t_mean, day, hour)
			w.daylight_ns[i] = pos.elevation > 0.0 || pos_next.elevation > 0.0
			if w.daylight_ns[i] {
				w.n_daylight++
			}
			i++
		}
	}

	return w
}

// ProfileRecord is the per-step record handed to the consuming layer.
type ProfileRecord struct {
	Day                 int     `csv:"day"`
	Hour                float64 `csv:"hour"`
	Elevation           float64 `csv:"elevation_deg"`
	Azimuth             float64 `csv:"azimuth_deg"`
	PanelTilt           float64 `csv:"panel_tilt_deg"`
	PanelAzimuth        float64 `csv:"panel_azimuth_deg"`
	CosTheta            float64 `csv:"cos_theta"`
	AmbientTemp         float64 `csv:"t_amb_c"`
	CellTemp            float64 `csv:"t_cell_c"`
	IncidentIrradiance  float64 `csv:"i_c_w_m2"`
	EffectiveIrradiance float64 `csv:"s_eff_w_m2"`
	PowerOutput         float64 `csv:"p_out_w_m2"`
	PowerAt25C          float64 `csv:"p_25c_w_m2"`
	LossAngular         float64 `csv:"loss_angular_w_m2"`
	LossThermal         float64 `csv:"loss_thermal_w_m2"`
}

// ModeResult holds the full-year series and records of one mode.
type ModeResult struct {
	mode    TrackingMode
	records []ProfileRecord
	// incident irradiance, W/m2, [n]
	incident_ns *mat.VecDense
	// output power, W/m2, [n]
	power_ns *mat.VecDense
	// counterfactual power at 25 degree C, W/m2, [n]
	power_25_ns *mat.VecDense
	// angular loss, W/m2, [n]
	loss_ang_ns *mat.VecDense
	// thermal loss, W/m2, [n]
	loss_therm_ns *mat.VecDense
}

// AnnualProfile owns the per-mode results of one run.
type AnnualProfile struct {
	cfg     *SimulationConfig
	weather *annualWeather
	results map[TrackingMode]*ModeResult
}

/*
Run the annual sweep.

Args:

	cfg: simulation configuration

Returns:

	AnnualProfile with one ModeResult per configured mode, or the
	configuration error
*/
func simulate(cfg *SimulationConfig) (*AnnualProfile, error) {

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	w := calc_annual_weather(cfg)

	p := &AnnualProfile{
		cfg:     cfg,
		weather: w,
		results: make(map[TrackingMode]*ModeResult, len(cfg.modes)),
	}

	for _, mode := range cfg.modes {
		p.results[mode] = _evaluate_mode(mode, w, cfg)
	}

	return p, nil
}

/*
Evaluate one orientation mode over the precomputed weather.

Args:

	mode: tracking mode
	w: precomputed orientation-independent series
	cfg: simulation configuration

Returns:

	ModeResult with one record per step
*/
func _evaluate_mode(mode TrackingMode, w *annualWeather, cfg *SimulationConfig) *ModeResult {

	n_steps := len(w.day_ns)

	records := make([]ProfileRecord, n_steps)
	incident_ns := make([]float64, n_steps)
	power_ns := make([]float64, n_steps)
	power_25_ns := make([]float64, n_steps)
	loss_ang_ns := make([]float64, n_steps)
	loss_therm_ns := make([]float64, n_steps)

	for i := 0; i < n_steps; i++ {
		pos := w.pos_ns[i]
		atm := w.atm_ns[i]
		t_amb := w.t_amb_ns[i]

		var or PanelOrientation
		var inc IncidentIrradiance
		var perf PVPerformance

		if mode.is_bifacial() {
			or, inc, perf = _evaluate_bifacial_step(mode, pos, atm, t_amb, cfg)
		} else {
			or = mode.orientation(pos, cfg.location, &cfg.panel)
			inc = calc_incident_irradiance(
				pos.elevation, pos.azimuth, or.sigma_deg, or.phi_c_deg,
				atm.i_b, atm.c, cfg.rho_g,
			)
			perf = cfg.module.calc_performance(inc.i_total, inc.cos_theta, t_amb)
		}

		records[i] = ProfileRecord{
			Day:                 w.day_ns[i],
			Hour:                w.hour_ns[i],
			Elevation:           pos.elevation,
			Azimuth:             pos.azimuth,
			PanelTilt:           or.sigma_deg,
			PanelAzimuth:        or.phi_c_deg,
			CosTheta:            inc.cos_theta,
			AmbientTemp:         t_amb,
			CellTemp:            perf.t_cell,
			IncidentIrradiance:  inc.i_total,
			EffectiveIrradiance: perf.s_eff,
			PowerOutput:         perf.p_out,
			PowerAt25C:          perf.p_ref_25,
			LossAngular:         perf.loss_angular,
			LossThermal:         perf.loss_thermal,
		}

		incident_ns[i] = inc.i_total
		power_ns[i] = perf.p_out
		power_25_ns[i] = perf.p_ref_25
		loss_ang_ns[i] = perf.loss_angular
		loss_therm_ns[i] = perf.loss_thermal
	}

	return &ModeResult{
		mode:          mode,
		records:       records,
		incident_ns:   mat.NewVecDense(n_steps, incident_ns),
		power_ns:      mat.NewVecDense(n_steps, power_ns),
		power_25_ns:   mat.NewVecDense(n_steps, power_25_ns),
		loss_ang_ns:   mat.NewVecDense(n_steps, loss_ang_ns),
		loss_therm_ns: mat.NewVecDense(n_steps, loss_therm_ns),
	}
}

/*
Evaluate one step of a bifacial mode: both faces go through the
projection and the electrical model, and the two electrical outputs are
averaged. Averaging the two irradiances instead would be wrong because
the electrical response is nonlinear in irradiance and temperature.

Returns:

	orientation of face A, averaged incident irradiance and averaged
	electrical performance
*/
func _evaluate_bifacial_step(
	mode TrackingMode, pos SolarPosition, atm AtmosphericIrradiance,
	t_amb float64, cfg *SimulationConfig,
) (PanelOrientation, IncidentIrradiance, PVPerformance) {

	tilt := get_bifacial_tilt()
	az_a, az_b := mode.face_azimuths()

	inc_a := calc_incident_irradiance(pos.elevation, pos.azimuth, tilt, az_a, atm.i_b, atm.c, cfg.rho_g)
	inc_b := calc_incident_irradiance(pos.elevation, pos.azimuth, tilt, az_b, atm.i_b, atm.c, cfg.rho_g)

	perf_a := cfg.module.calc_performance(inc_a.i_total, inc_a.cos_theta, t_amb)
	perf_b := cfg.module.calc_performance(inc_b.i_total, inc_b.cos_theta, t_amb)

	or := PanelOrientation{sigma_deg: tilt, phi_c_deg: az_a}

	inc := IncidentIrradiance{
		i_total:     (inc_a.i_total + inc_b.i_total) / 2.0,
		i_beam:      (inc_a.i_beam + inc_b.i_beam) / 2.0,
		i_diffuse:   (inc_a.i_diffuse + inc_b.i_diffuse) / 2.0,
		i_reflected: (inc_a.i_reflected + inc_b.i_reflected) / 2.0,
		cos_theta:   (inc_a.cos_theta + inc_b.cos_theta) / 2.0,
	}

	perf := PVPerformance{
		iam:             (perf_a.iam + perf_b.iam) / 2.0,
		s_eff:           (perf_a.s_eff + perf_b.s_eff) / 2.0,
		t_cell:          (perf_a.t_cell + perf_b.t_cell) / 2.0,
		p_out:           (perf_a.p_out + perf_b.p_out) / 2.0,
		p_ref_25:        (perf_a.p_ref_25 + perf_b.p_ref_25) / 2.0,
		loss_angular:    (perf_a.loss_angular + perf_b.loss_angular) / 2.0,
		loss_thermal:    (perf_a.loss_thermal + perf_b.loss_thermal) / 2.0,
		cooling_benefit: (perf_a.cooling_benefit + perf_b.cooling_benefit) / 2.0,
	}

	return or, inc, perf
}

// AnnualSummary holds the per-mode annual totals.
type AnnualSummary struct {
	Mode string `csv:"mode"`
	// incident energy over the range, kWh/m2
	IncidentEnergy float64 `csv:"incident_kwh_m2"`
	// electrical energy over the range, kWh/m2
	ElectricalEnergy float64 `csv:"electrical_kwh_m2"`
	// counterfactual electrical energy with the cell held at 25 degree C, kWh/m2
	CooledElectricalEnergy float64 `csv:"cooled_electrical_kwh_m2"`
	// angular loss over the range, kWh/m2
	AngularLoss float64 `csv:"loss_angular_kwh_m2"`
	// thermal loss over the range, kWh/m2
	ThermalLoss float64 `csv:"loss_thermal_kwh_m2"`
	// electrical / incident energy, -
	EffectiveEfficiency float64 `csv:"effective_efficiency"`
	// electrical energy relative to the 2-axis mode, %
	PerformanceRatio float64 `csv:"ratio_vs_2axis_percent"`
	// capacity factor over all steps of the range, %
	CapacityFactorOverall float64 `csv:"cf_overall_percent"`
	// capacity factor over daylight steps only, %
	CapacityFactorDaylight float64 `csv:"cf_daylight_percent"`
}

// per-step records of one mode
func (p *AnnualProfile) records(mode TrackingMode) []ProfileRecord {
	return p.results[mode].records
}

// number of daylight steps of the run
func (p *AnnualProfile) daylight_steps() int {
	return p.weather.n_daylight
}

/*
Calculate the annual summary of one mode.

Args:

	mode: tracking mode (must be part of the run)

Returns:

	AnnualSummary of the mode

Notes:

	Energy = sum of power * dt / 1000, kWh/m2. The capacity factors rate
	the module at eta kW/m2 (STC is 1 kW/m2). The performance ratio is
	zero when the 2-axis mode is not part of the run.
*/
func (p *AnnualProfile) annual_summary(mode TrackingMode) AnnualSummary {

	r := p.results[mode]
	dt := p.cfg.itv.get_time()

	// kWh/m2 per unit of summed W/m2
	to_kwh := dt / 1000.0

	incident := mat.Sum(r.incident_ns) * to_kwh
	electrical := mat.Sum(r.power_ns) * to_kwh
	cooled := mat.Sum(r.power_25_ns) * to_kwh

	eff := 0.0
	if incident > 0.0 {
		eff = electrical / incident
	}

	ratio := 0.0
	if two_axis, ok := p.results[TrackingTwoAxis]; ok {
		base := mat.Sum(two_axis.power_ns) * to_kwh
		if base > 0.0 {
			ratio = electrical / base * 100.0
		}
	}

	// rated power, kW/m2
	rated := p.cfg.module.eta

	cf := func(hours float64) float64 {
		if hours <= 0.0 || rated <= 0.0 {
			return 0.0
		}
		return electrical / (rated * hours) * 100.0
	}

	return AnnualSummary{
		Mode:                   string(mode),
		IncidentEnergy:         incident,
		ElectricalEnergy:       electrical,
		CooledElectricalEnergy: cooled,
		AngularLoss:            mat.Sum(r.loss_ang_ns) * to_kwh,
		ThermalLoss:            mat.Sum(r.loss_therm_ns) * to_kwh,
		EffectiveEfficiency:    eff,
		PerformanceRatio:       ratio,
		CapacityFactorOverall:  cf(float64(len(r.records)) * dt),
		CapacityFactorDaylight: cf(float64(p.weather.n_daylight) * dt),
	}
}
