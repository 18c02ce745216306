package util

import (
	"fmt"
	"math"
	"time"
)

const (
	minutesInDay        = 1440
	minutesInMonth      = 43200
	minutesInTwoMonths  = 86400
	monthsInYear        = 12
	secondsLessThanMins = 30
)

// FormatDistance describes the distance between t and now in words, with a
// suffix: "less than a minute ago", "about 3 hours ago", "in 2 days".
func FormatDistance(t, now time.Time) string {
	if t.After(now) {
		return "in " + distanceWords(now, t)
	}

	return distanceWords(t, now) + " ago"
}

// FormatDistanceToNow is FormatDistance against the current time.
func FormatDistanceToNow(t time.Time) string {
	return FormatDistance(t, time.Now())
}

// distanceWords expects earlier <= later.
func distanceWords(earlier, later time.Time) string {
	seconds := later.Sub(earlier).Seconds()
	minutes := int(math.Round(seconds / 60))

	switch {
	case seconds < secondsLessThanMins:
		return "less than a minute"
	case minutes < 2:
		return "1 minute"
	case minutes < 45:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes < 90:
		return "about 1 hour"
	case minutes < minutesInDay:
		return fmt.Sprintf("about %d hours", int(math.Round(float64(minutes)/60)))
	case minutes < 2520:
		return "1 day"
	case minutes < minutesInMonth:
		return fmt.Sprintf("%d days", int(math.Round(float64(minutes)/minutesInDay)))
	case minutes < minutesInTwoMonths:
		months := int(math.Round(float64(minutes) / minutesInMonth))
		if months <= 1 {
			return "about 1 month"
		}

		return fmt.Sprintf("about %d months", months)
	}

	months := monthsBetween(earlier, later)
	if months < monthsInYear {
		return plural(max(months, 2), "month")
	}

	years := months / monthsInYear
	rest := months % monthsInYear
	switch {
	case rest < 3:
		return "about " + plural(years, "year")
	case rest < 9:
		return "over " + plural(years, "year")
	default:
		return "almost " + plural(years+1, "year")
	}
}

// monthsBetween counts whole calendar months from earlier to later.
func monthsBetween(earlier, later time.Time) int {
	months := (later.Year()-earlier.Year())*monthsInYear + int(later.Month()) - int(earlier.Month())
	if months > 0 && earlier.AddDate(0, months, 0).After(later) {
		months--
	}

	return months
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
