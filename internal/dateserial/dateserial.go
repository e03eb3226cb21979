// Package dateserial converts spreadsheet date serial numbers to and
// from calendar dates. Serials count days from a fixed epoch; the
// default 1900 epoch carries the historical fabricated Feb 29 1900 at
// serial 60, which this package reproduces rather than corrects so
// that serials round-trip against real workbook files.
package dateserial

import (
	"math"
	"time"
)

// Options select the serial epoch.
type Options struct {
	// Base1904 uses the 1904 epoch (no fabricated leap day, no
	// off-by-one compensation).
	Base1904 bool
}

// leapBugSerial is the serial of the fabricated Feb 29 1900.
const leapBugSerial = 60

var (
	// epoch1900 is the day before serial 1 (1900-01-01).
	epoch1900 = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
	// epoch1904 is serial 0 in 1904 mode.
	epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Decode converts a serial to a UTC calendar date. The fractional day
// part (time of day) is discarded. Non-finite and negative serials are
// invalid, as is serial 60 in 1900 mode.
func Decode(serial float64, opts Options) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	days := int(math.Floor(serial))
	if days < 0 {
		return time.Time{}, false
	}

	if opts.Base1904 {
		return epoch1904.AddDate(0, 0, days), true
	}

	if days == leapBugSerial {
		return time.Time{}, false
	}
	if days > leapBugSerial {
		// The fabricated day shifted every later serial by one.
		days--
	}
	return epoch1900.AddDate(0, 0, days), true
}

// Encode converts a calendar date to its serial. Dates before the
// epoch report false. The inverse of Decode for every date except the
// fabricated leap day, which no real date maps to.
func Encode(t time.Time, opts Options) (float64, bool) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	epoch := epoch1900
	if opts.Base1904 {
		epoch = epoch1904
	}
	days := int(day.Sub(epoch).Hours() / 24)

	if opts.Base1904 {
		if days < 0 {
			return 0, false
		}
		return float64(days), true
	}

	if days < 1 {
		return 0, false
	}
	if days >= leapBugSerial {
		days++
	}
	return float64(days), true
}
