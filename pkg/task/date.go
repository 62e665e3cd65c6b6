package task

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. The zero value
// means "no date" and marshals to an empty string.
type Date struct {
	time.Time
}

// ParseDate parses an ISO calendar date such as "2024-03-01".
func ParseDate(v string) (Date, error) {
	if v == "" {
		return Date{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// DateOf truncates a time down to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// SameDay reports whether the date falls on the same calendar day as then.
func (d Date) SameDay(then time.Time) bool {
	if d.IsZero() {
		return false
	}
	return d.Year() == then.Year() &&
		d.Month() == then.Month() &&
		d.Day() == then.Day()
}

// BeforeDay reports whether the date is strictly before then's calendar day.
func (d Date) BeforeDay(then time.Time) bool {
	if d.IsZero() {
		return false
	}
	return d.Time.Before(time.Date(then.Year(), then.Month(), then.Day(), 0, 0, 0, 0, d.Location()))
}

// ISO renders the date as "2006-01-02", or "" for the zero value.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.ISO())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock is a wall-clock time of day (hour and minute).
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a clock time such as "09:00".
func ParseClock(v string) (Clock, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c)), nil
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		*c = Clock{}
		return nil
	}
	parsed, err := ParseClock(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
