package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Day is a calendar date without time or location. It is transmitted as YYYY-MM-DD and stored in
// columns of type date.
type Day struct {
	civil.Date
}

func ParseDay(s string) (Day, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Day{d}, nil
}

func DayOf(t time.Time) Day {
	return Day{civil.DateOf(t)}
}

func (d Day) Before(other Day) bool {
	return d.Date.Before(other.Date)
}

func (d Day) After(other Day) bool {
	return d.Date.After(other.Date)
}

// Compare returns -1 if d is before other, +1 if it is after and 0 if both are the same day.
func (d Day) Compare(other Day) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

// Within reports whether d lies in the inclusive window [from, to].
func (d Day) Within(from, to Day) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Day) Time() time.Time {
	return d.In(time.UTC)
}

func (Day) GormDataType() string {
	return "date"
}

func (d Day) Value() (driver.Value, error) {
	return d.Time(), nil
}

func (d *Day) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("unable to scan %T into Day", src)
	}
}

func (d *Day) parse(s string) error {
	// some drivers return dates as timestamps
	if len(s) > len("2006-01-02") {
		s = s[:len("2006-01-02")]
	}
	parsed, err := civil.ParseDate(s)
	if err != nil {
		return err
	}
	d.Date = parsed
	return nil
}
