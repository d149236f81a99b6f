package date

import "fmt"

// Range represents a range of dates, both bounds included.
type Range struct{ From, To Date }

// Trailing returns the range of the n calendar months ending on d.
// The start bound is the day d shifted n months back.
func Trailing(d Date, months int) Range { return Range{From: d.AddMonth(-months), To: d} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// String returns "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
