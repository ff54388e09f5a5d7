package models

import (
	"mailtime-service/internal/pkg/exceptions"
	"time"
)

// OfficeHours is a recurring Monday to Friday availability window in one
// timezone. Start is inclusive, End exclusive, both whole hours.
type OfficeHours struct {
	Timezone string `json:"timeZone" bson:"timeZone"`
	Start    int    `json:"start" bson:"start"`
	End      int    `json:"end" bson:"end"`

	loc *time.Location
}

func NewOfficeHours(timezone string, start, end int) (OfficeHours, error) {
	oh := OfficeHours{Timezone: timezone, Start: start, End: end}
	if err := oh.Validate(); err != nil {
		return OfficeHours{}, err
	}
	return oh, nil
}

// Validate checks the hour range and resolves the IANA zone. It must be
// called on deserialized values before any time arithmetic.
func (o *OfficeHours) Validate() error {
	if o.Start < 0 || o.End > 24 || o.Start >= o.End {
		return exceptions.ErrInvalidOfficeHours(o.Start, o.End)
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return exceptions.ErrInvalidTimezone(err, o.Timezone)
	}
	o.loc = loc
	return nil
}

// Location returns the resolved zone. Validate must have succeeded first.
func (o OfficeHours) Location() *time.Location {
	if o.loc == nil {
		loc, err := time.LoadLocation(o.Timezone)
		if err != nil {
			return time.UTC
		}
		return loc
	}
	return o.loc
}

// Contains reports whether t falls inside the window: local hour in
// [Start, End) on a Monday to Friday.
func (o OfficeHours) Contains(t time.Time) bool {
	local := t.In(o.Location())
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return local.Hour() >= o.Start && local.Hour() < o.End
}
