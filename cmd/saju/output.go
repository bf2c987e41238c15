package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"saju-lab/saju"
)

// render writes v in the selected output format, calling text for "text"
func render(w io.Writer, v any, text func(io.Writer)) error {
	switch rootFlags.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// go through JSON so the engine's MarshalJSON names are kept
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	case "text", "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", rootFlags.output)
	}
}

func writePillars(w io.Writer, fp saju.FourPillars) {
	labels := [4]string{"Year", "Month", "Day", "Hour"}
	for i, p := range fp.Pillars() {
		if !p.Known() {
			fmt.Fprintf(w, "  %-6s (unknown)\n", labels[i])
			continue
		}
		fmt.Fprintf(w, "  %-6s %s (%s)\n", labels[i], p.Name(), p.Hanja())
	}
	fmt.Fprintf(w, "  Zodiac %s\n", fp.Zodiac())
}

func writeProfile(w io.Writer, p saju.ElementProfile) {
	parts := make([]string, 0, len(saju.Elements))
	for _, e := range saju.Elements {
		parts = append(parts, fmt.Sprintf("%s %d", e, p.Counts[e]))
	}
	fmt.Fprintf(w, "Elements:  %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(w, "Dominant:  %s   Deficient: %s\n", p.Dominant, p.Deficient)
	fmt.Fprintf(w, "Core:      %s (%s) %s\n", p.CoreElement, p.DayStem, p.Meaning.Symbol)
}

func writeCategories(w io.Writer, r saju.FortuneResult) {
	keys := make([]string, 0, len(r.Categories))
	for c := range r.Categories {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)
	for _, k := range keys {
		c := r.Categories[saju.Category(k)]
		fmt.Fprintf(w, "  %-8s %3d  %s\n", k, c.Score, c.Narrative)
	}
}

func writeLucky(w io.Writer, l saju.LuckyAttributes) {
	fmt.Fprintf(w, "Lucky:     %s, %d, %s, %s, %s\n", l.Color, l.Number, l.Direction, l.Food, l.Activity)
}
