package saju

import (
	"errors"
	"testing"
	"time"
)

// =============================================================================
// INPUT PARSING TESTS
// =============================================================================

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"1990-01-15", Date{1990, time.January, 15}, false},
		{" 2000-02-29 ", Date{2000, time.February, 29}, false},
		{"1900-01-01", Date{1900, time.January, 1}, false},
		{"", Date{}, true},
		{"1990-1-15", Date{}, true},
		{"1990/01/15", Date{}, true},
		{"2001-02-29", Date{}, true},
		{"1990-13-01", Date{}, true},
		{"yesterday", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateInput) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidDateInput", tt.in, err)
				}
				var ie *InputError
				if !errors.As(err, &ie) || ie.Field != "birth_date" {
					t.Errorf("ParseDate(%q) error %v should be an InputError for birth_date", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBirthTime(t *testing.T) {
	tests := []struct {
		in      string
		want    BirthTime
		wantErr bool
	}{
		{"unknown", UnknownTime, false},
		{"", UnknownTime, false},
		{"00:00", BirthTime{true, 0, 0}, false},
		{"9:30", BirthTime{true, 9, 30}, false},
		{"23:59", BirthTime{true, 23, 59}, false},
		{"24:00", BirthTime{}, true},
		{"12:60", BirthTime{}, true},
		{"12:5", BirthTime{}, true},
		{"1230", BirthTime{}, true},
		{"noon", BirthTime{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBirthTime(tt.in)
			if tt.wantErr {
				var ie *InputError
				if !errors.As(err, &ie) || ie.Field != "birth_time" {
					t.Fatalf("ParseBirthTime(%q) error = %v, want InputError for birth_time", tt.in, err)
				}
				if !errors.Is(err, ErrInvalidDateInput) {
					t.Errorf("ParseBirthTime(%q) error should unwrap to ErrInvalidDateInput", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBirthTime(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBirthTime(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// =============================================================================
// PILLAR TESTS
// =============================================================================

// TestComputePillars_RegressionAnchor pins 1990-01-15 to 경술 (stem 6, branch 10).
// 1990-01-15 is 32886 days after 1900-01-01: 32886 % 10 = 6, (32886+4) % 12 = 10.
func TestComputePillars_RegressionAnchor(t *testing.T) {
	fp, err := ComputePillars("1990-01-15", "unknown")
	if err != nil {
		t.Fatalf("ComputePillars failed: %v", err)
	}

	if fp.Day.Stem != 6 || fp.Day.Branch != 10 {
		t.Errorf("Day pillar = (%d,%d) %s, want (6,10) 경술", fp.Day.Stem, fp.Day.Branch, fp.Day.Name())
	}
	if fp.Day.Name() != "경술" || fp.Day.Hanja() != "庚戌" {
		t.Errorf("Day pillar name = %s/%s, want 경술/庚戌", fp.Day.Name(), fp.Day.Hanja())
	}
	if fp.Year.Name() != "경오" {
		t.Errorf("Year pillar = %s, want 경오", fp.Year.Name())
	}
	if fp.Month.Name() != "병인" {
		t.Errorf("Month pillar = %s, want 병인", fp.Month.Name())
	}
	if fp.Hour.Stem != StemUnknown || fp.Hour.Branch != BranchUnknown {
		t.Errorf("Hour pillar = %+v, want unknown sentinels", fp.Hour)
	}
	if fp.Zodiac() != "말" {
		t.Errorf("Zodiac = %s, want 말", fp.Zodiac())
	}
}

func TestDayPillar_ReferenceDate(t *testing.T) {
	p := DayPillar(Date{1900, time.January, 1})
	if p.Stem != 0 || p.Branch != 4 {
		t.Errorf("DayPillar(1900-01-01) = (%d,%d), want (0,4)", p.Stem, p.Branch)
	}

	// one day earlier must wrap with a non-negative modulo
	p = DayPillar(Date{1899, time.December, 31})
	if p.Stem != 9 || p.Branch != 3 {
		t.Errorf("DayPillar(1899-12-31) = (%d,%d), want (9,3)", p.Stem, p.Branch)
	}
}

func TestDayPillar_Period60(t *testing.T) {
	start := Date{1850, time.June, 1}
	for i := 0; i < 2000; i++ {
		d := start.AddDays(i * 37)
		a, b := DayPillar(d), DayPillar(d.AddDays(60))
		if a != b {
			t.Fatalf("DayPillar(%s) = %s but DayPillar(+60 days) = %s", d, a.Name(), b.Name())
		}
		if DayPillar(d.AddDays(1)) == a {
			t.Fatalf("DayPillar(%s) repeats on the next day", d)
		}
	}
}

func TestYearPillar(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1984, "갑자"},
		{1990, "경오"},
		{2024, "갑진"},
		{2026, "병오"},
		{1983, "계해"},
		{1924, "갑자"},
		{1900, "경자"},
	}

	for _, tt := range tests {
		if got := YearPillar(tt.year).Name(); got != tt.want {
			t.Errorf("YearPillar(%d) = %s, want %s", tt.year, got, tt.want)
		}
	}
}

func TestMonthPillar(t *testing.T) {
	// month 1 always carries the Tiger branch (index 2)
	for ys := Stem(0); ys < 10; ys++ {
		if got := MonthPillar(ys, 1).Branch; got != 2 {
			t.Errorf("MonthPillar(%s, 1) branch = %d, want 2", ys, got)
		}
	}
	if got := MonthPillar(0, 1).Name(); got != "갑인" {
		t.Errorf("MonthPillar(갑, 1) = %s, want 갑인", got)
	}
	if got := MonthPillar(0, 11).Branch; got != 0 {
		t.Errorf("MonthPillar(갑, 11) branch = %d, want 0", got)
	}
	if got := MonthPillar(5, 12).Name(); got != "을축" {
		t.Errorf("MonthPillar(기, 12) = %s, want 을축", got)
	}
}

// =============================================================================
// HOUR BIN TESTS
// =============================================================================

func TestBranchForClock_Boundaries(t *testing.T) {
	tests := []struct {
		clock string
		want  Branch
	}{
		{"23:45", 0},
		{"00:15", 0},
		{"23:30", 0},
		{"01:29", 0},
		{"01:30", 1},
		{"23:29", 11},
		{"11:30", 6},
		{"12:00", 6},
		{"13:29", 6},
		{"13:30", 7},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			bt, err := ParseBirthTime(tt.clock)
			if err != nil {
				t.Fatalf("ParseBirthTime(%q): %v", tt.clock, err)
			}
			if got := bt.Branch(); got != tt.want {
				t.Errorf("Branch(%s) = %s(%d), want %s(%d)", tt.clock, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestHourPillar(t *testing.T) {
	fp, err := ComputePillars("1990-01-15", "10:30")
	if err != nil {
		t.Fatalf("ComputePillars failed: %v", err)
	}
	// day stem 경 (6): (6%5)*2 + 5 = 7
	if fp.Hour.Name() != "신사" {
		t.Errorf("Hour pillar = %s, want 신사", fp.Hour.Name())
	}
}

func TestComputePillars_InvalidInput(t *testing.T) {
	if _, err := ComputePillars("", "unknown"); !errors.Is(err, ErrInvalidDateInput) {
		t.Errorf("empty date error = %v, want ErrInvalidDateInput", err)
	}
	if _, err := ComputePillars("1990-01-15", "25:00"); !errors.Is(err, ErrInvalidDateInput) {
		t.Errorf("bad time error = %v, want ErrInvalidDateInput", err)
	}
}
