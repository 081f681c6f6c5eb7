package taskgen

import (
	"math"
	"time"
)

// DateLayout is the YYYY-MM-DD format used in task ids and ledger
// fields. It is a durable contract: historical task re-derivation
// parses it back out of stored ids.
const DateLayout = "2006-01-02"

// DateString formats t as a UTC calendar date.
func DateString(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// CalculateLoginStreak computes the new consecutive-day login streak.
// Same day keeps the streak, a one-day gap increments it, anything else
// (longer gaps, missing or unparseable dates, clock skew) resets to 1:
// the streak is at least 1 on any day the user logs in.
func CalculateLoginStreak(lastLoginDate, currentDate string, currentStreak int) int {
	if lastLoginDate == "" {
		return 1
	}
	last, err := time.Parse(DateLayout, lastLoginDate)
	if err != nil {
		return 1
	}
	today, err := time.Parse(DateLayout, currentDate)
	if err != nil {
		return 1
	}

	diffDays := int(math.Floor(today.Sub(last).Hours() / 24))
	switch diffDays {
	case 0:
		return currentStreak
	case 1:
		return currentStreak + 1
	default:
		return 1
	}
}
