package mailtime

import (
	"mailtime-service/internal/app/models"
	"time"
)

// Calculator decomposes the interval between a received and a responded
// instant for one responder.
type Calculator func(user models.User, from, to time.Time) []Segment

// NaiveSegments treats the whole interval as contributing, ignoring office
// hours entirely.
func NaiveSegments(user models.User, from, to time.Time) []Segment {
	start := from.Truncate(time.Second)
	return []Segment{{
		OfficeHours: user.OfficeHours,
		From:        &start,
		To:          to.Truncate(time.Second),
	}}
}

// BusinessHoursSegments restricts the interval to the responder's office
// hours.
func BusinessHoursSegments(user models.User, from, to time.Time) []Segment {
	return SegmentsBetween(user.OfficeHours, from, to)
}

// SumDurations adds up the contributing segments. Zero-length segments are
// excluded.
func SumDurations(segments []Segment) time.Duration {
	var total time.Duration
	for _, segment := range segments {
		if d, ok := segment.Duration(); ok && d > 0 {
			total += d
		}
	}
	return total
}
