package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"saju-lab/saju"
)

var dailyFlags subjectFlags

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Compute the daily fortune for a birth date",
	RunE:  runDaily,
}

func init() {
	dailyFlags.register(dailyCmd)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	eval, err := evalDate()
	if err != nil {
		return err
	}
	res, err := saju.ComputeDailyFortune(dailyFlags.birthDate, dailyFlags.birthTime, eval)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), res, func(w io.Writer) { writeFortune(w, res) })
}

// writeFortune prints the parts shared by every fortune mode
func writeFortune(w io.Writer, res saju.FortuneResult) {
	fmt.Fprintf(w, "%s fortune for %s\n", res.Mode, res.EvaluationDate)
	writePillars(w, res.Pillars)
	fmt.Fprintf(w, "Reference: %s (%s)\n", res.Reference.Name(), res.Reference.Hanja())
	fmt.Fprintf(w, "Relation:  %s, %d\n", res.Relation.Label, res.Relation.Score)
	writeCategories(w, res)
	writeLucky(w, res.Lucky)
	if res.Quote != nil {
		fmt.Fprintf(w, "Quote:     %s (%s)\n", res.Quote.Text, res.Quote.Meaning)
	}
}
