package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"saju-lab/saju"
)

var compatFlags struct {
	a, b saju.SubjectInput
}

var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "Rate the compatibility of two people",
	RunE:  runCompat,
}

func init() {
	f := compatCmd.Flags()
	f.StringVar(&compatFlags.a.BirthDate, "a-birth-date", "", "First person's birth date (required)")
	f.StringVar(&compatFlags.a.BirthTime, "a-birth-time", "unknown", "First person's birth time")
	f.StringVar(&compatFlags.a.Name, "a-name", "", "First person's name")
	f.StringVar(&compatFlags.b.BirthDate, "b-birth-date", "", "Second person's birth date (required)")
	f.StringVar(&compatFlags.b.BirthTime, "b-birth-time", "unknown", "Second person's birth time")
	f.StringVar(&compatFlags.b.Name, "b-name", "", "Second person's name")
}

func runCompat(cmd *cobra.Command, _ []string) error {
	c, err := saju.ComputeCompatibility(compatFlags.a, compatFlags.b)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), c, func(w io.Writer) {
		fmt.Fprintf(w, "%s (%s) and %s (%s)\n", nameOr(c.A.Name, "A"), c.A.Profile.CoreElement, nameOr(c.B.Name, "B"), c.B.Profile.CoreElement)
		fmt.Fprintf(w, "Level:     %s, %d\n", c.Level, c.Score)
		fmt.Fprintf(w, "Reading:   %s\n", c.Description)
		fmt.Fprintf(w, "Advice:    %s\n", c.Advice)
	})
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
