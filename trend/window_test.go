package trend

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestWindowBand(t *testing.T) {
	testCases := []struct {
		window Window
		lo, hi float64
	}{
		{SixMonths, 5, 7.5},
		{TwelveMonths, 10, 14},
		{ThreeYears, 30, 42},
		{Months(1), 0.5, 2.5},
	}
	for _, tc := range testCases {
		if lo, hi := tc.window.Band(); !near(lo, tc.lo) || !near(hi, tc.hi) {
			t.Errorf("%v.Band() = %v, %v want %v, %v", tc.window, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestParseWindow(t *testing.T) {
	testCases := []struct {
		in      string
		want    Window
		wantErr bool
	}{
		{"6M", SixMonths, false},
		{"12m", TwelveMonths, false},
		{"3Y", ThreeYears, false},
		{"15y", FifteenYears, false},
		{"9", Window{"9M", 9}, false},
		{"0M", Window{}, true},
		{"six", Window{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseWindow(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseWindow(%q) error = %v want error %v", tc.in, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("ParseWindow(%q) error = %v want %v", tc.in, err, ErrInvalidWindow)
		}
		if got != tc.want {
			t.Errorf("ParseWindow(%q) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestWindowJSON(t *testing.T) {
	data, err := json.Marshal(Result{Window: ThreeYears})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal(%s) error = %v", data, err)
	}
	if got.Window != ThreeYears {
		t.Errorf("Unmarshal(%s).Window = %v want %v", data, got.Window, ThreeYears)
	}
}
