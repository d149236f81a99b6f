// Package date provides a day-granularity calendar date and chronological
// series, with the month arithmetic used by spreadsheet-style reports.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// daysPerMonth is the average length of a calendar month.
const daysPerMonth = 365.25 / 12

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on d being before, equal or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns the same day i calendar months later (or earlier when i
// is negative). When the target month is shorter, the date is clamped to its
// last day: 2025-08-31 minus 6 months is 2025-02-28, as a spreadsheet EDATE.
func (d Date) AddMonth(i int) Date {
	first := New(d.y, d.m+time.Month(i), 1)
	last := New(first.y, first.m+1, 0).d
	return Date{first.y, first.m, min(d.d, last)}
}

// AddYear is AddMonth with a count of years.
func (d Date) AddYear(i int) Date { return d.AddMonth(12 * i) }

// DaysSince returns the number of calendar days from x to d.
// It is positive when x is before d.
func (d Date) DaysSince(x Date) int { return int(d.time().Sub(x.time()) / Day) }

// MonthsSince returns the distance from x to d in average calendar months.
func (d Date) MonthsSince(x Date) float64 { return float64(d.DaysSince(x)) / daysPerMonth }

// YearsSince returns the distance from x to d in average years.
func (d Date) YearsSince(x Date) float64 { return d.MonthsSince(x) / 12 }

// Year returns current year.
func (d Date) Year() int { return d.y }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
// A full timestamp such as "2025-07-01T00:00:00.000Z" is truncated to its day.
func Parse(str string) (Date, error) {
	if len(str) > len(DateFormat) && str[len(DateFormat)] == 'T' {
		str = str[:len(DateFormat)]
	}
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	if string(bytes) == "null" {
		*j = Date{}
		return nil
	}
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	if j.IsZero() {
		return []byte("null"), nil
	}
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
