package mailtime

import (
	"mailtime-service/internal/app/models"
	"time"
)

// Segment is one piece of a decomposed interval. From is nil when the
// piece starts outside office hours and contributes nothing; To is the
// frontier the next advance continues from.
type Segment struct {
	OfficeHours models.OfficeHours
	From        *time.Time
	To          time.Time
}

// Duration returns the contributed time of the segment. The second return
// is false for non-contributing segments.
func (s Segment) Duration() (time.Duration, bool) {
	if s.From == nil {
		return 0, false
	}
	return s.To.Sub(*s.From), true
}

// Advance moves the frontier to the next office-hours boundary, clamped to
// cutoff. The produced segment contributes iff the previous frontier was
// inside office hours.
func (s Segment) Advance(cutoff time.Time) Segment {
	next := nextBoundary(s.OfficeHours, s.To)
	if next.After(cutoff) {
		next = cutoff
	}
	var from *time.Time
	if s.OfficeHours.Contains(s.To) {
		at := s.To
		from = &at
	}
	return Segment{OfficeHours: s.OfficeHours, From: from, To: next}
}

// nextBoundary reindexes the frontier into the office-hours zone and
// advances it to the next start or end of a working window.
func nextBoundary(oh models.OfficeHours, frontier time.Time) time.Time {
	local := frontier.In(oh.Location())
	switch {
	case local.Weekday() == time.Saturday:
		return atHour(local.AddDate(0, 0, 2), oh.Start)
	case local.Weekday() == time.Sunday:
		return atHour(local.AddDate(0, 0, 1), oh.Start)
	case local.Hour() < oh.Start:
		return atHour(local, oh.Start)
	case local.Hour() >= oh.End:
		return atHour(nextWeekday(local), oh.Start)
	default:
		return atHour(local, oh.End)
	}
}

func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

func nextWeekday(t time.Time) time.Time {
	if t.Weekday() == time.Friday {
		return t.AddDate(0, 0, 3)
	}
	return t.AddDate(0, 0, 1)
}

// SegmentsBetween decomposes [from, to) into alternating contributing and
// non-contributing segments anchored to oh. An empty interval yields no
// segments. Instants are truncated to whole seconds.
func SegmentsBetween(oh models.OfficeHours, from, to time.Time) []Segment {
	seg := Segment{OfficeHours: oh, To: from.Truncate(time.Second)}
	cutoff := to.Truncate(time.Second)

	var segments []Segment
	for seg.To.Before(cutoff) {
		seg = seg.Advance(cutoff)
		segments = append(segments, seg)
	}
	return segments
}
