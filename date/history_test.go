package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}

	h.Append(d1, "replaced")
	if v, _ := h.Get(d1); h.Len() != 2 || v != "replaced" {
		t.Errorf("Append(d1, replaced) = %d items, %q want 2 items, %q", h.Len(), v, "replaced")
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParse("2025-01-02"), 10)
	h.Append(MustParse("2025-01-06"), 11)
	h.Append(MustParse("2025-01-07"), 12)

	testCases := []struct {
		name      string
		on        Date
		wantDay   Date
		wantValue float64
		wantOK    bool
	}{
		{"exact", MustParse("2025-01-06"), MustParse("2025-01-06"), 11, true},
		{"weekend", MustParse("2025-01-04"), MustParse("2025-01-02"), 10, true},
		{"after", MustParse("2025-02-01"), MustParse("2025-01-07"), 12, true},
		{"before", MustParse("2024-12-31"), Date{}, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			day, v, ok := h.ValueAsOf(tc.on)
			if day != tc.wantDay || v != tc.wantValue || ok != tc.wantOK {
				t.Errorf("ValueAsOf(%v) = %v, %v, %v want %v, %v, %v", tc.on, day, v, ok, tc.wantDay, tc.wantValue, tc.wantOK)
			}
		})
	}
}

func TestValueOnOrAfter(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParse("2025-01-02"), 10)
	h.Append(MustParse("2025-01-06"), 11)

	if day, v, ok := h.ValueOnOrAfter(MustParse("2025-01-03")); !ok || v != 11 || day != MustParse("2025-01-06") {
		t.Errorf("ValueOnOrAfter(2025-01-03) = %v, %v, %v want 2025-01-06, 11, true", day, v, ok)
	}
	if _, _, ok := h.ValueOnOrAfter(MustParse("2025-01-07")); ok {
		t.Errorf("ValueOnOrAfter(2025-01-07) found a value, want none")
	}
}

func TestBetween(t *testing.T) {
	h := new(History[float64])
	for i := 1; i <= 10; i++ {
		h.Append(New(2025, 1, i), float64(i))
	}
	var sum float64
	for _, v := range h.Between(Range{From: New(2025, 1, 3), To: New(2025, 1, 5)}) {
		sum += v
	}
	if sum != 12 {
		t.Errorf("sum of Between(3..5) = %v want 12", sum)
	}
}
