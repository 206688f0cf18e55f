// Package datecalc holds calendar arithmetic for the dashboard: the
// semimonthly payday countdown and the profile tenure line.
package datecalc

import (
	"fmt"
	"time"
)

// NextPayday returns the next semimonthly payday on or after now, along with
// the number of whole days remaining. Paydays fall on the 15th and the last
// day of each month. Zero days means today is payday.
func NextPayday(now time.Time) (time.Time, int) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	mid := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, now.Location())
	eom := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())

	var payday time.Time
	switch {
	case !today.After(mid):
		payday = mid
	case !today.After(eom):
		payday = eom
	default:
		payday = time.Date(now.Year(), now.Month()+1, 15, 0, 0, 0, 0, now.Location())
	}
	return payday, daysBetween(today, payday)
}

// daysBetween counts calendar days from a to b. Normalizing both endpoints
// to UTC midnights keeps the count exact across DST transitions, where the
// local span can be an hour short of a whole day multiple.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// Tenure phrases the span between hire date and today the way the profile
// page shows it: years and months, or days when under a month.
func Tenure(hireDate, today time.Time) string {
	hire := time.Date(hireDate.Year(), hireDate.Month(), hireDate.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(hire) {
		return "Joined Today"
	}

	years := now.Year() - hire.Year()
	months := int(now.Month()) - int(hire.Month())
	if now.Day() < hire.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	if years == 0 && months == 0 {
		days := int(now.Sub(hire).Hours() / 24)
		switch days {
		case 0:
			return "Joined Today"
		case 1:
			return "1 day"
		default:
			return fmt.Sprintf("%d days", days)
		}
	}

	yearPart := plural(years, "year")
	monthPart := plural(months, "month")
	switch {
	case years == 0:
		return monthPart
	case months == 0:
		return yearPart
	default:
		return yearPart + " and " + monthPart
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
