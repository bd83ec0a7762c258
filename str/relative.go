package str

import (
	"fmt"
	"math"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

const (
	minutesPerDay = 24 * 60
	daysPerYear   = 365.25
)

// RelativeTime describes from relative to to in English, e.g. "just now",
// "20 minutes ago", "next week" or "6 years from now". A from earlier than to
// lies in the future ("from now", "next"); a later from lies in the past
// ("ago", "last").
//
//	RelativeTime(t, t.Add(59*time.Second)) // → "59 seconds from now"
//	RelativeTime(t.Add(36*time.Hour), t)   // → "last day"
func RelativeTime(from, to time.Time) string {
	span := timespan.BetweenTimes(from, to).Duration()
	seconds := math.Abs(span.Seconds())
	if seconds < 5 {
		return "just now"
	}

	past := from.After(to)
	suffix, prefix := "from now", "next"
	if past {
		suffix, prefix = "ago", "last"
	}

	if seconds < 60 {
		return fmt.Sprintf("%d seconds %s", int(seconds), suffix)
	}
	if seconds < 120 {
		return "a minute " + suffix
	}

	minutes := seconds / 60
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes %s", int(minutes), suffix)
	case minutes < 120:
		return "an hour " + suffix
	case minutes < minutesPerDay:
		return fmt.Sprintf("%d hours %s", int(minutes/60), suffix)
	case minutes < minutesPerDay*2:
		return prefix + " day"
	case minutes < minutesPerDay*7:
		return fmt.Sprintf("%d days %s", int(minutes/minutesPerDay), suffix)
	case minutes < minutesPerDay*14:
		return prefix + " week"
	case minutes < minutesPerDay*31:
		return fmt.Sprintf("%d weeks %s", int(minutes/(minutesPerDay*7)), suffix)
	case minutes < minutesPerDay*61:
		return prefix + " month"
	case minutes < minutesPerDay*daysPerYear:
		return fmt.Sprintf("%d months %s", int(minutes/(minutesPerDay*30)), suffix)
	case minutes < minutesPerDay*731:
		return prefix + " year"
	default:
		return fmt.Sprintf("%d years %s", int(minutes/(minutesPerDay*365)), suffix)
	}
}
