/*
Package serialdate converts between spreadsheet serial day numbers and calendar time.

A serial number counts days, with the time of day as fraction, since an epoch.
Two epochs are in use:

- The 1900 date system starts with serial 1 at 1 Jan 1900. It follows the leap-year
  error of early spreadsheet software, which treated 1900 as a leap year. Serial
  60 stands for the non-existent 29 Feb 1900, so every date from 1 Mar 1900 onwards
  is one serial higher than a plain day count would make it. This package maps
  serial 60 to 1 Mar 1900.

- The 1904 date system starts with serial 0 at 1 Jan 1904 and needs no correction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package serialdate

import (
	"math"
	"time"
)

var (
	epoch1900       = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
	epoch1900Leaped = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	epoch1904       = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	firstLeaped     = time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)
)

// fictitiousLeapDay is the serial number of 29 Feb 1900 in the 1900 date system.
const fictitiousLeapDay = 60

const dayNanos = float64(24 * time.Hour)

// ToTime converts a serial number to a time in UTC.
// The time of day is rounded to the nearest millisecond.
func ToTime(serial float64, date1904 bool) time.Time {
	base := epoch1904
	if !date1904 {
		if serial >= fictitiousLeapDay+1 {
			base = epoch1900Leaped
		} else {
			base = epoch1900
		}
	}
	whole, frac := math.Modf(serial)
	ms := math.Round(frac * dayNanos / float64(time.Millisecond))
	return base.AddDate(0, 0, int(whole)).Add(time.Duration(ms) * time.Millisecond)
}

// FromTime converts a time to a serial number. Only the wall clock of t is
// considered, its location is ignored.
func FromTime(t time.Time, date1904 bool) float64 {
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), time.UTC)
	base := epoch1904
	if !date1904 {
		if t.Before(firstLeaped) {
			base = epoch1900
		} else {
			base = epoch1900Leaped
		}
	}
	secs := t.Unix() - base.Unix()
	days := secs / 86400
	if secs%86400 < 0 {
		days--
	}
	rest := secs - days*86400
	return float64(days) + (float64(rest)*float64(time.Second)+float64(t.Nanosecond()))/dayNanos
}
