package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"saju-lab/saju"
)

var batchFlags struct {
	input string
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compute daily fortunes for every subject in a YAML file",
	Long:  "batch reads a YAML list of subjects (name, birth_date, birth_time, gender)\nand computes their daily fortunes in parallel, keeping input order.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFlags.input, "input", "i", "", "YAML subjects file, - for stdin (required)")
	_ = batchCmd.MarkFlagRequired("input")
}

// batchFile is the YAML input layout
type batchFile struct {
	Subjects []saju.SubjectInput `yaml:"subjects"`
}

func readBatch(path string, stdin io.Reader) ([]saju.SubjectInput, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read subjects: %w", err)
	}

	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse subjects: %w", err)
	}
	if len(f.Subjects) == 0 {
		return nil, fmt.Errorf("no subjects in %s", path)
	}
	return f.Subjects, nil
}

type batchEntry struct {
	Name   string             `json:"name,omitempty"`
	Result saju.FortuneResult `json:"result"`
}

func runBatch(cmd *cobra.Command, _ []string) error {
	eval, err := evalDate()
	if err != nil {
		return err
	}
	inputs, err := readBatch(batchFlags.input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	results, err := saju.ComputeDailyBatch(cmd.Context(), inputs, eval)
	if err != nil {
		return err
	}

	entries := make([]batchEntry, len(results))
	for i, r := range results {
		entries[i] = batchEntry{Name: inputs[i].Name, Result: r}
	}

	return render(cmd.OutOrStdout(), entries, func(w io.Writer) {
		fmt.Fprintf(w, "Daily fortunes for %s\n", eval)
		for i, e := range entries {
			overall := e.Result.Categories[saju.CategoryOverall]
			fmt.Fprintf(w, "  %-10s %s %-3s %3d  %s\n", nameOr(e.Name, fmt.Sprintf("#%d", i+1)),
				e.Result.Pillars.Day.Name(), e.Result.Profile.CoreElement, overall.Score, e.Result.Relation.Label)
		}
	})
}
