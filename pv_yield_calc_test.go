package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	body := `{"latitude": 40.0, "modes": ["2axis", "fixed_custom"], "fixed_tilt": 35.0}`
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))

	c, err := load_config(path)
	require.NoError(t, err)

	assert.Equal(t, 40.0, c.Latitude)
	assert.Equal(t, 115.89, c.Longitude, "absent keys fall back to the defaults")
	assert.Equal(t, string(IntervalH1), c.Interval)
	assert.Equal(t, []string{"2axis", "fixed_custom"}, c.Modes)
	require.NotNil(t, c.FixedTilt)
	assert.Equal(t, 35.0, *c.FixedTilt)
	assert.Nil(t, c.TrackerTilt)
}

func TestLoadConfigEmptyPathMeansDefaults(t *testing.T) {
	c, err := load_config("")
	require.NoError(t, err)
	assert.Equal(t, -32.05, c.Latitude)
	assert.Equal(t, 1, c.DayStart)
	assert.Equal(t, 365, c.DayEnd)
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("{latitude:"), 0644))

	_, err := load_config(path)
	assert.Error(t, err)
}

func TestToSimulationConfig(t *testing.T) {
	c := new_default_config()
	c.Modes = []string{"horizontal", "2axis"}
	tracker_tilt := 28.0
	c.TrackerTilt = &tracker_tilt

	cfg, err := c.to_simulation_config()
	require.NoError(t, err)

	assert.Equal(t, -32.05, cfg.location.Latitude)
	assert.Equal(t, []TrackingMode{TrackingHorizontal, TrackingTwoAxis}, cfg.modes)
	assert.Equal(t, 28.0, cfg.panel.tracker_tilt_deg)
	// the fixed panel keeps the latitude-derived default
	assert.Equal(t, 32.05, cfg.panel.fixed_tilt_deg)
	assert.Equal(t, get_eta_stc(), cfg.module.eta)
}

func TestToSimulationConfigRejectsInvalidLatitude(t *testing.T) {
	c := new_default_config()
	c.Latitude = -95.0

	_, err := c.to_simulation_config()
	assert.Error(t, err)
}

func TestRecorderSavesSummaryAndRecords(t *testing.T) {
	cfg := new_simulation_config(Location{Latitude: -32.0, Longitude: 115.89, UTCOffset: 8.0})
	cfg.day_start = 100
	cfg.day_end = 102
	cfg.modes = []TrackingMode{TrackingHorizontal, TrackingTwoAxis}

	profile, err := simulate(cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	r := NewRecorder(profile)

	require.NoError(t, r.save_summary(dir))
	require.NoError(t, r.save_records(dir))

	file, err := os.Open(filepath.Join(dir, "annual_summary.csv"))
	require.NoError(t, err)
	defer file.Close()

	var rows []AnnualSummary
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "horizontal", rows[0].Mode)
	assert.Equal(t, "2axis", rows[1].Mode)
	assert.Greater(t, rows[1].IncidentEnergy, rows[0].IncidentEnergy)

	for _, mode := range cfg.modes {
		body, err := ioutil.ReadFile(filepath.Join(dir, "hourly_"+string(mode)+".csv"))
		require.NoError(t, err)

		// header plus one line per step of the three-day range
		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		assert.Len(t, lines, 1+3*24)
	}
}
