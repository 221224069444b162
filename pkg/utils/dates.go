package utils

import (
	"math"
	"time"
)

// TripDateLayout is the wire format for check-in/check-out dates.
const TripDateLayout = "2006-01-02"

func ParseTripDate(s string) (time.Time, error) {
	return time.Parse(TripDateLayout, s)
}

// TripDurationDays returns the stay length in whole days, rounding any
// partial day up and never reporting less than one day.
func TripDurationDays(checkIn, checkOut time.Time) int {
	days := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// TripDurationFromStrings is the string-input variant used by handlers.
// Unparseable dates collapse to a one-day trip rather than erroring, so
// downstream budget math always has a positive divisor.
func TripDurationFromStrings(checkIn, checkOut string) int {
	in, err1 := ParseTripDate(checkIn)
	out, err2 := ParseTripDate(checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	return TripDurationDays(in, out)
}
