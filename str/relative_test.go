package str_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-extensions/str"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestRelativeTime(t *testing.T) {
	start := date(2000, 1, 1, 0, 0, 0)
	tests := []struct {
		other        time.Time
		future, past string
	}{
		{date(2000, 1, 1, 0, 0, 4), "just now", "just now"},
		{date(2000, 1, 1, 0, 0, 59), "59 seconds from now", "59 seconds ago"},
		{date(2000, 1, 1, 0, 1, 59), "a minute from now", "a minute ago"},
		{date(2000, 1, 1, 0, 20, 59), "20 minutes from now", "20 minutes ago"},
		{date(2000, 1, 1, 0, 59, 59), "59 minutes from now", "59 minutes ago"},
		{date(2000, 1, 1, 1, 59, 59), "an hour from now", "an hour ago"},
		{date(2000, 1, 1, 23, 59, 59), "23 hours from now", "23 hours ago"},
		{date(2000, 1, 2, 23, 59, 59), "next day", "last day"},
		{date(2000, 1, 7, 23, 59, 59), "6 days from now", "6 days ago"},
		{date(2000, 1, 14, 23, 59, 59), "next week", "last week"},
		{date(2000, 1, 30, 23, 59, 59), "4 weeks from now", "4 weeks ago"},
		{date(2000, 2, 28, 23, 59, 59), "next month", "last month"},
		{date(2000, 12, 30, 23, 59, 59), "12 months from now", "12 months ago"},
		{date(2001, 12, 30, 23, 59, 59), "next year", "last year"},
		{date(2005, 12, 30, 23, 59, 59), "6 years from now", "6 years ago"},
	}
	for _, tt := range tests {
		t.Run(tt.future, func(t *testing.T) {
			assert.Equal(t, tt.future, str.RelativeTime(start, tt.other))
			assert.Equal(t, tt.past, str.RelativeTime(tt.other, start))
		})
	}
}

func TestRelativeTimeIgnoresZone(t *testing.T) {
	utc := date(2000, 1, 1, 12, 0, 0)
	berlin := utc.In(time.FixedZone("CET", 3600))

	assert.Equal(t, "just now", str.RelativeTime(utc, berlin))
	assert.Equal(t, "an hour ago", str.RelativeTime(utc.Add(time.Hour), berlin))
}
