package saju

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the only accepted date format
const dateLayout = "2006-01-02"

// Date is a proleptic Gregorian calendar day without a time zone
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a strict ISO YYYY-MM-DD date
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, invalidInput("birth_date", s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, invalidInput("birth_date", s)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar day of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier for negative n)
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week, Sunday = 0
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// IsZero reports whether the date was never set
func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

const secondsPerDay = 24 * 60 * 60

// daysBetween counts whole days from a to b. Unix seconds are used because a
// time.Duration saturates after about 292 years.
func daysBetween(a, b Date) int {
	return int((b.Time().Unix() - a.Time().Unix()) / secondsPerDay)
}

// BirthTime is a clock time of birth, or unknown
type BirthTime struct {
	Known  bool
	Hour   int
	Minute int
}

// UnknownTime is the sentinel for an unknown birth time
var UnknownTime = BirthTime{}

// ParseBirthTime accepts "HH:MM", "unknown" or an empty string
func ParseBirthTime(s string) (BirthTime, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "unknown" {
		return UnknownTime, nil
	}
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return BirthTime{}, invalidInput("birth_time", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return BirthTime{}, invalidInput("birth_time", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return BirthTime{}, invalidInput("birth_time", s)
	}
	return BirthTime{Known: true, Hour: h, Minute: m}, nil
}

// Branch returns the hour branch, or BranchUnknown
func (t BirthTime) Branch() Branch {
	if !t.Known {
		return BranchUnknown
	}
	return BranchForClock(t.Hour, t.Minute)
}

func (t BirthTime) String() string {
	if !t.Known {
		return "unknown"
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t BirthTime) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
