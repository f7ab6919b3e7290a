package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_normalizes(t *testing.T) {
	// day 32 of January is February 1st.
	if got, want := New(2024, time.January, 32), New(2024, time.February, 1); got != want {
		t.Errorf("New(2024, January, 32) = %s, want %s", got, want)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		day  Date
		add  int
		want Date
	}{
		{New(2024, time.January, 3), 1, New(2024, time.January, 4)},
		{New(2024, time.January, 1), -1, New(2023, time.December, 31)},
		{New(2024, time.February, 28), 1, New(2024, time.February, 29)}, // leap year
		{New(2024, time.December, 30), 2, New(2025, time.January, 1)},
	}
	for _, tt := range tests {
		if got := tt.day.Add(tt.add); got != tt.want {
			t.Errorf("%s.Add(%d) = %s, want %s", tt.day, tt.add, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	start := New(2024, time.January, 3)
	end := New(2024, time.December, 30)
	// 2024 is a leap year: Jan 3rd is day 3, Dec 30th is day 365.
	if got := end.Sub(start); got != 362 {
		t.Errorf("%s.Sub(%s) = %d, want 362", end, start, got)
	}
	if got := start.Sub(end); got != -362 {
		t.Errorf("%s.Sub(%s) = %d, want -362", start, end, got)
	}
	if got := start.Sub(start); got != 0 {
		t.Errorf("%s.Sub(itself) = %d, want 0", start, got)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2024-1-3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := d.String(), "2024-01-03"; got != want {
		t.Errorf("Parse(2024-1-3).String() = %q, want %q", got, want)
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Errorf("Parse(not-a-date) should have failed")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.June, 7)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2024-06-07"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2024-06-07"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(New(2024, time.January, 1), New(2024, time.January, 7))
	if !r.Contains(New(2024, time.January, 1)) || !r.Contains(New(2024, time.January, 7)) {
		t.Errorf("Range boundaries should be included")
	}
	if r.Contains(New(2023, time.December, 31)) || r.Contains(New(2024, time.January, 8)) {
		t.Errorf("Range should exclude days outside the boundaries")
	}
	if got := r.Days(); got != 6 {
		t.Errorf("Days() = %d, want 6", got)
	}
}
