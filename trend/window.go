package trend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Window is a trend length in calendar months.
type Window struct {
	Name   string
	Months int
}

// Named windows.
var (
	SixMonths    = Window{"6M", 6}
	TwelveMonths = Window{"12M", 12}
	ThreeYears   = Window{"3Y", 36}
	FiveYears    = Window{"5Y", 60}
	TenYears     = Window{"10Y", 120}
	FifteenYears = Window{"15Y", 180}
)

// Windows lists the named windows, shortest first.
var Windows = []Window{SixMonths, TwelveMonths, ThreeYears, FiveYears, TenYears, FifteenYears}

// Months returns the window of n months.
func Months(n int) Window {
	for _, w := range Windows {
		if w.Months == n {
			return w
		}
	}
	return Window{Name: fmt.Sprintf("%dM", n), Months: n}
}

// ParseWindow parses a window such as "6M", "12m", "3Y" or a plain number of months.
func ParseWindow(name string) (Window, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	unit := 1
	switch {
	case strings.HasSuffix(s, "Y"):
		s, unit = strings.TrimSuffix(s, "Y"), 12
	case strings.HasSuffix(s, "M"):
		s = strings.TrimSuffix(s, "M")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Window{}, fmt.Errorf("window %q want <n>M or <n>Y: %w", name, ErrInvalidWindow)
	}
	return Months(n * unit), nil
}

// Band returns the accepted distance, in months, between the latest record
// and the reference record of a trend over w.
//
// It is [5, 7.5] for six months and [10, 14] for twelve months, and widens
// by a sixth of the window for the longer ones.
func (w Window) Band() (lo, hi float64) {
	n := float64(w.Months)
	lo = n - max(n/6, min(1, n/2))
	hi = n + max(n/6, 1.5)
	return lo, hi
}

func (w Window) String() string { return w.Name }

// MarshalJSON encodes the window name.
func (w Window) MarshalJSON() ([]byte, error) { return json.Marshal(w.Name) }

func (w *Window) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseWindow(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
