package utils

import (
	"time"

	"github.com/poofware/revenue-service/internal/models"
)

// MonthWindowInTZ returns the half-open UTC window [start, end) covering the
// given calendar month as observed in the named timezone: start is local
// midnight on the 1st, end is local midnight on the 1st of the next month
// (December rolls into January of the following year). Conversion goes
// through timezone-aware arithmetic, so DST transitions land correctly.
//
// An unknown or invalid timezone name degrades to UTC instead of erroring;
// window math must never take a request down.
func MonthWindowInTZ(month, year int, tzName string) models.TimeWindow {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)

	var end time.Time
	if month < 12 {
		end = time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, loc)
	} else {
		end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	}

	return models.TimeWindow{StartUTC: start.UTC(), EndUTC: end.UTC()}
}
