package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"saju-lab/saju"
)

var calendarFlags struct {
	subjectFlags
	year  int
	month int
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Label every day of a month for a birth date",
	RunE:  runCalendar,
}

func init() {
	calendarFlags.register(calendarCmd)
	f := calendarCmd.Flags()
	f.IntVar(&calendarFlags.year, "year", 0, "Year (default current year)")
	f.IntVar(&calendarFlags.month, "month", 0, "Month 1-12 (default current month)")
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	now := nowFunc()
	year, month := calendarFlags.year, calendarFlags.month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	cal, err := saju.ComputeMonthCalendar(calendarFlags.birthDate, calendarFlags.birthTime, year, time.Month(month))
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cal, func(w io.Writer) {
		fmt.Fprintf(w, "%d-%02d for a %s core\n", cal.Year, int(cal.Month), cal.CoreElement)
		for _, d := range cal.Days {
			fmt.Fprintf(w, "  %s %s %s  %s\n", d.Date, d.Date.Weekday().String()[:3], d.Pillar.Name(), d.Label)
		}
	})
}
