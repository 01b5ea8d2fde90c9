package main

// sampling interval of the annual sweep
type Interval string

const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

func IntervalFromString(str string) Interval {
	switch str {
	case "1h":
		return IntervalH1
	case "30m":
		return IntervalM30
	case "15m":
		return IntervalM15
	default:
		panic("invalid interval")
	}
}

/*
Get the number of steps one hour is divided into.

Returns:

	steps per hour

Notes:

	1h: 1
	30m: 2
	15m: 4
*/
func (i Interval) get_n_hour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	default:
		panic("invalid interval")
	}
}

/*
Get the duration of one step.

Returns:

	step duration, h
*/
func (i Interval) get_time() float64 {
	switch i {
	case IntervalH1:
		return 1.0
	case IntervalM30:
		return 0.5
	case IntervalM15:
		return 0.25
	default:
		panic("invalid interval")
	}
}

/*
Get the number of steps one year corresponds to at this interval.

Returns:

	steps per year (8760 at 1h, 17520 at 30m, 35040 at 15m)
*/
func (i Interval) get_annual_number() int {
	return 8760 * i.get_n_hour()
}
