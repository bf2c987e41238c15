package saju

import (
	"fmt"
	"time"
)

// CalendarDay is one day of a fortune calendar
type CalendarDay struct {
	Date   Date          `json:"date"`
	Pillar Pillar        `json:"pillar"`
	Class  RelationClass `json:"class"`
	Label  string        `json:"label"`
}

// MonthCalendar is the day-by-day fortune of one calendar month
type MonthCalendar struct {
	Year        int            `json:"year"`
	Month       time.Month     `json:"month"`
	CoreElement Element        `json:"core_element"`
	Days        []CalendarDay  `json:"days"`
	Counts      map[string]int `json:"counts"`
}

// ComputeMonthCalendar labels every day of year/month against the subject's core element
func ComputeMonthCalendar(birthDate, birthTime string, year int, month time.Month) (MonthCalendar, error) {
	if month < time.January || month > time.December {
		return MonthCalendar{}, &InputError{Field: "month", Value: fmt.Sprint(int(month)), Err: ErrInvalidDateInput}
	}
	s, err := SubjectInput{BirthDate: birthDate, BirthTime: birthTime}.Parse()
	if err != nil {
		return MonthCalendar{}, err
	}

	cal := MonthCalendar{Year: year, Month: month, CoreElement: s.core(), Counts: make(map[string]int)}
	for d := (Date{Year: year, Month: month, Day: 1}); d.Month == month; d = d.AddDays(1) {
		p := DayPillar(d)
		class := Classify(s.core(), p.Branch.Element())
		label := calendarLabels[class]
		cal.Days = append(cal.Days, CalendarDay{Date: d, Pillar: p, Class: class, Label: label})
		cal.Counts[label]++
	}
	return cal, nil
}
