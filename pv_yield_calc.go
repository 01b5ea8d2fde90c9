package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"
)

// Config is the JSON configuration surface of a run.
type Config struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UTCOffset float64 `json:"utc_offset"`
	// sampling interval: 1h, 30m or 15m
	Interval string `json:"interval"`
	// calendar range, day of year
	DayStart int `json:"day_start"`
	DayEnd   int `json:"day_end"`
	// tracking modes to evaluate; empty means all nine
	Modes []string `json:"modes"`
	// ground reflectance, -
	GroundReflectance float64 `json:"ground_reflectance"`
	// module efficiency at STC, -
	ModuleEfficiency float64 `json:"module_efficiency"`
	// nominal operating cell temperature, degree C
	NOCT float64 `json:"noct"`
	// angular loss coefficient, -
	AlphaR float64 `json:"alpha_r"`
	// power temperature coefficient, 1/K
	AlphaP float64 `json:"alpha_p"`
	// annual mean ambient temperature, degree C
	MeanTemperature float64 `json:"mean_temperature"`
	// overrides for the fixed custom panel and the azimuth tracker;
	// nil means latitude-derived defaults
	FixedTilt    *float64 `json:"fixed_tilt"`
	FixedAzimuth *float64 `json:"fixed_azimuth"`
	TrackerTilt  *float64 `json:"tracker_tilt"`
}

/*
Get the default configuration: a full-year hourly run at the reference
site of the validation scenarios (Perth, latitude -32.05).
*/
func new_default_config() *Config {
	return &Config{
		Latitude:          -32.05,
		Longitude:         115.89,
		UTCOffset:         8.0,
		Interval:          string(IntervalH1),
		DayStart:          1,
		DayEnd:            365,
		GroundReflectance: get_rho_g(),
		ModuleEfficiency:  get_eta_stc(),
		NOCT:              get_noct(),
		AlphaR:            get_alpha_r(),
		AlphaP:            get_alpha_p(),
		MeanTemperature:   get_t_mean_default(),
	}
}

/*
Read the configuration JSON file on top of the defaults, so absent keys
keep their default values.

Args:

	config_path: path of the JSON file; empty keeps the defaults

Returns:

	Config, or the read/parse error
*/
func load_config(config_path string) (*Config, error) {

	c := new_default_config()

	if config_path == "" {
		return c, nil
	}

	file, err := os.Open(config_path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bytes, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(bytes, c); err != nil {
		return nil, err
	}

	return c, nil
}

/*
Build the simulation configuration from the JSON surface.

Returns:

	SimulationConfig, or the first validation error
*/
func (c *Config) to_simulation_config() (*SimulationConfig, error) {

	loc := Location{Latitude: c.Latitude, Longitude: c.Longitude, UTCOffset: c.UTCOffset}

	cfg := new_simulation_config(loc)
	cfg.itv = IntervalFromString(c.Interval)
	cfg.day_start = c.DayStart
	cfg.day_end = c.DayEnd
	cfg.rho_g = c.GroundReflectance
	cfg.t_mean = c.MeanTemperature
	cfg.module = PVModule{
		eta:     c.ModuleEfficiency,
		noct:    c.NOCT,
		alpha_r: c.AlphaR,
		alpha_p: c.AlphaP,
	}

	if len(c.Modes) > 0 {
		modes := make([]TrackingMode, 0, len(c.Modes))
		for _, m := range c.Modes {
			modes = append(modes, TrackingModeFromString(m))
		}
		cfg.modes = modes
	}

	if c.FixedTilt != nil {
		cfg.panel.fixed_tilt_deg = *c.FixedTilt
	}
	if c.FixedAzimuth != nil {
		cfg.panel.fixed_azimuth_deg = *c.FixedAzimuth
	}
	if c.TrackerTilt != nil {
		cfg.panel.tracker_tilt_deg = *c.TrackerTilt
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

/*
Run one simulation.

Args:

	config_path: path of the configuration JSON file
	output_data_dir: output folder
	objective: tilt search objective, electrical or irradiance
	use_optimal_tilt: search the optimal tilt first and feed it to the
	    azimuth tracker
	records_saved: save the per-step records besides the summary
*/
func run(
	config_path string,
	output_data_dir string,
	objective string,
	use_optimal_tilt bool,
	records_saved bool,
) {

	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	log.Printf("Load configuration from `%s`", config_path)
	c, err := load_config(config_path)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := c.to_simulation_config()
	if err != nil {
		log.Fatal(err)
	}

	if use_optimal_tilt {
		log.Printf("Search the optimal fixed tilt (%s objective)", objective)
		tilt, yield, err := calc_optimal_tilt(cfg, ObjectiveFromString(objective))
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Optimal tilt: %d deg, electrical yield %.2f kWh/m2", tilt, yield)
		cfg.panel.tracker_tilt_deg = float64(tilt)
	}

	log.Printf("Run annual profile: latitude %.2f, %d modes", cfg.location.Latitude, len(cfg.modes))
	profile, err := simulate(cfg)
	if err != nil {
		log.Fatal(err)
	}

	for _, mode := range cfg.modes {
		s := profile.annual_summary(mode)
		log.Printf(
			"%-18s incident %8.2f kWh/m2, electrical %7.2f kWh/m2, efficiency %.4f",
			s.Mode, s.IncidentEnergy, s.ElectricalEnergy, s.EffectiveEfficiency,
		)
	}

	r := NewRecorder(profile)
	if err := r.save_summary(output_data_dir); err != nil {
		log.Fatal(err)
	}
	if records_saved {
		if err := r.save_records(output_data_dir); err != nil {
			log.Fatal(err)
		}
	}
}

func main() {
	var config_path string
	flag.StringVar(&config_path, "input", "", "configuration JSON file")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output folder")

	var objective string
	flag.StringVar(&objective, "objective", "electrical", "tilt search objective (electrical or irradiance)")

	var optimal_tilt bool
	flag.BoolVar(&optimal_tilt, "optimal_tilt", false, "search the optimal tilt and feed it to the azimuth tracker")

	var records_saved bool
	flag.BoolVar(&records_saved, "records_saved", false, "save the per-step records besides the summary")

	flag.Parse()

	fmt.Printf("config_path: %s\n", config_path)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("objective: %s\n", objective)
	fmt.Printf("optimal_tilt: %t\n", optimal_tilt)
	fmt.Printf("records_saved: %t\n", records_saved)

	start := time.Now()

	run(config_path, output_data_dir, objective, optimal_tilt, records_saved)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
