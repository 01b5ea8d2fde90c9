package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

/*
Tabular export of a finished run. The recorder implements no physics: it
consumes the per-step records and annual summaries as plain structured
data and writes them out for the dashboard and batch layers.
*/

type Recorder struct {
	profile *AnnualProfile
}

func NewRecorder(profile *AnnualProfile) *Recorder {
	return &Recorder{profile: profile}
}

/*
Save the annual summaries of every mode of the run.

Args:

	output_data_dir: output folder

Returns:

	error from the filesystem or the CSV encoder
*/
func (r *Recorder) save_summary(output_data_dir string) error {

	rows := make([]AnnualSummary, 0, len(r.profile.cfg.modes))
	for _, mode := range r.profile.cfg.modes {
		rows = append(rows, r.profile.annual_summary(mode))
	}

	summary_path := filepath.Join(output_data_dir, "annual_summary.csv")
	log.Printf("Save annual summary to `%s`", summary_path)

	file, err := os.Create(summary_path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}

/*
Save the per-step records of every mode of the run, one file per mode.

Args:

	output_data_dir: output folder

Returns:

	error from the filesystem or the CSV encoder
*/
func (r *Recorder) save_records(output_data_dir string) error {

	for _, mode := range r.profile.cfg.modes {
		records := r.profile.records(mode)

		record_path := filepath.Join(output_data_dir, fmt.Sprintf("hourly_%s.csv", mode))
		log.Printf("Save hourly records to `%s`", record_path)

		file, err := os.Create(record_path)
		if err != nil {
			return err
		}

		if err := gocsv.MarshalFile(&records, file); err != nil {
			file.Close()
			return err
		}
		file.Close()
	}

	return nil
}
