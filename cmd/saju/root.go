package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"saju-lab/saju"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	output string
	date   string
}

var rootCmd = &cobra.Command{
	Use:   "saju",
	Short: "Four Pillars profiles and fortunes from the command line",
	Long:  "saju computes Four Pillars (사주) profiles, daily, family and annual fortunes,\nmonthly calendars and compatibility locally, and exports stored subjects\nfrom running saju-lab servers.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootFlags.output, "output", "o", "text", "Output format: text, json or yaml")
	pf.StringVar(&rootFlags.date, "date", "", "Evaluation date YYYY-MM-DD (default today)")

	rootCmd.AddCommand(pillarsCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(familyCmd)
	rootCmd.AddCommand(annualCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(compatCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// nowFunc is read once per command
var nowFunc = time.Now

// evalDate resolves --date, defaulting to today in local time
func evalDate() (saju.Date, error) {
	if strings.TrimSpace(rootFlags.date) == "" {
		return saju.DateOf(nowFunc()), nil
	}
	d, err := saju.ParseDate(rootFlags.date)
	if err != nil {
		return saju.Date{}, fmt.Errorf("--date: %w", err)
	}
	return d, nil
}
