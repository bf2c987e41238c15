package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"saju-lab/saju"
)

var annualFlags struct {
	subjectFlags
	year   int
	gender string
}

var annualCmd = &cobra.Command{
	Use:   "annual",
	Short: "Compute the yearly forecast with its monthly breakdown",
	RunE:  runAnnual,
}

func init() {
	annualFlags.register(annualCmd)
	f := annualCmd.Flags()
	f.IntVar(&annualFlags.year, "year", 0, "Forecast year (default current year)")
	f.StringVar(&annualFlags.gender, "gender", "male", "Gender: male or female")
}

func runAnnual(cmd *cobra.Command, _ []string) error {
	year := annualFlags.year
	if year == 0 {
		year = nowFunc().Year()
	}
	res, err := saju.ComputeAnnualFortune(annualFlags.birthDate, annualFlags.birthTime, year, saju.ParseGender(annualFlags.gender))
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), res, func(w io.Writer) {
		a := res.Annual
		fmt.Fprintf(w, "%d %s (%s) for a %s subject\n", a.ForecastYear, a.YearPillar.Name(), a.YearPillar.Hanja(), a.Gender)
		fmt.Fprintf(w, "Type:      %s level %d\n", a.Type, a.Level)
		fmt.Fprintf(w, "Summary:   %s\n", a.Summary)
		fmt.Fprintf(w, "Keywords:  %s\n", a.Keywords)
		writeCategories(w, res)
		fmt.Fprintf(w, "Wealth:    %s element, %s\n", a.WealthElement, a.WealthDirection)
		fmt.Fprintf(w, "Health:    %s: %s\n", a.Health.Organ, a.Health.Remedy)
		fmt.Fprintf(w, "Love:      %s (%s)\n", a.LoveMatch, a.LoveDirection)
		fmt.Fprintf(w, "Career:    %s\n", strings.Join(a.CareerFields, ", "))
		fmt.Fprintln(w, "Months:")
		for _, m := range res.Monthly {
			fmt.Fprintf(w, "  %2d %s %-4s %3d %s\n", m.Month, m.Branch, m.Label, m.Score, m.Description)
		}
	})
}
