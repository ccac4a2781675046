package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-10", want: New(2025, time.January, 10)},
		{in: "2025-1-1", want: New(2025, time.January, 1)},
		{in: "2025-12-31", want: New(2025, time.December, 31)},
		{in: "10/01/2025", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_Normalization(t *testing.T) {
	// New normalizes out-of-range components the way time.Date does.
	if got, want := New(2025, time.January, 32), New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, January, 32) = %v, want %v", got, want)
	}
	if got, want := MustParse("2025-01-31").Add(1), MustParse("2025-02-01"); got != want {
		t.Errorf("Add(1) across month = %v, want %v", got, want)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParse("2025-03-01")
	b := MustParse("2025-03-02")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is inconsistent for %v and %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date should be neither before nor after itself")
	}
}

func TestStartOf(t *testing.T) {
	d := MustParse("2025-08-17")
	if got, want := d.StartOf(Monthly), MustParse("2025-08-01"); got != want {
		t.Errorf("StartOf(Monthly) = %v, want %v", got, want)
	}
	if got, want := d.StartOf(Yearly), MustParse("2025-01-01"); got != want {
		t.Errorf("StartOf(Yearly) = %v, want %v", got, want)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"monthly": Monthly,
		"month":   Monthly,
		"Yearly":  Yearly,
		" year ":  Yearly,
	} {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Errorf("ParsePeriod(%q) returned error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePeriod("weekly"); err == nil {
		t.Error("ParsePeriod(\"weekly\") should fail, only month and year are supported")
	}
}
