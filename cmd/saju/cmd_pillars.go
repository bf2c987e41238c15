package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"saju-lab/saju"
)

// subjectFlags are shared by the single-subject commands
type subjectFlags struct {
	birthDate string
	birthTime string
}

func (f *subjectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "Birth date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.birthTime, "birth-time", "unknown", "Birth time HH:MM or \"unknown\"")
	_ = cmd.MarkFlagRequired("birth-date")
}

var pillarsFlags subjectFlags

var pillarsCmd = &cobra.Command{
	Use:   "pillars",
	Short: "Show the four pillars and element profile of a birth date",
	RunE:  runPillars,
}

func init() {
	pillarsFlags.register(pillarsCmd)
}

func runPillars(cmd *cobra.Command, _ []string) error {
	fp, err := saju.ComputePillars(pillarsFlags.birthDate, pillarsFlags.birthTime)
	if err != nil {
		return err
	}
	subject := saju.Subject{Pillars: fp, Profile: saju.ComputeElementProfile(fp)}

	return render(cmd.OutOrStdout(), subject, func(w io.Writer) {
		fmt.Fprintf(w, "Birth:     %s %s\n", fp.BirthDate, fp.BirthTime)
		writePillars(w, fp)
		writeProfile(w, subject.Profile)
		fmt.Fprintf(w, "Nature:    %s\n", subject.Profile.Meaning.Description)
	})
}
