package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"saju-lab/internal/apiversion"
	"saju-lab/saju"
)

var exportFlags struct {
	servers string
	keys    string
	file    string
	timeout time.Duration
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch stored subjects from saju-lab servers into one snapshot",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.servers, "servers", "", "Comma-separated server addresses (e.g. localhost:8080,localhost:8081)")
	f.StringVar(&exportFlags.keys, "keys", "home", "Comma-separated subject keys to fetch from each server")
	f.StringVar(&exportFlags.file, "file", "subjects.json", "Snapshot output path")
	f.DurationVar(&exportFlags.timeout, "timeout", 10*time.Second, "Per-request timeout")
	_ = exportCmd.MarkFlagRequired("servers")
}

// ExportedSubject is one stored record and where it came from
type ExportedSubject struct {
	Server string          `json:"server"`
	Key    string          `json:"key"`
	Record json.RawMessage `json:"record"`
}

// SubjectSnapshot is the export file layout
type SubjectSnapshot struct {
	Subjects    []ExportedSubject `json:"subjects"`
	Timestamp   string            `json:"timestamp"`
	ServerCount int               `json:"server_count"`
	Failures    []string          `json:"failures,omitempty"`
}

// serverVersion is the part of /api/version the client checks
type serverVersion struct {
	API string `json:"api"`
}

// storedRecord is the part of a subject record used for statistics
type storedRecord struct {
	Self   *saju.SubjectInput `json:"self"`
	Parent *saju.SubjectInput `json:"parent"`
	Child  *saju.SubjectInput `json:"child"`
}

func runExport(cmd *cobra.Command, _ []string) error {
	servers := splitCSV(exportFlags.servers)
	keys := splitCSV(exportFlags.keys)
	if len(servers) == 0 || len(keys) == 0 {
		return fmt.Errorf("--servers and --keys must name at least one entry")
	}
	out := cmd.OutOrStdout()
	client := &http.Client{Timeout: exportFlags.timeout}

	fmt.Fprintf(out, "Fetching %d keys from %d servers...\n", len(keys), len(servers))

	var (
		mu       sync.Mutex
		subjects []ExportedSubject
		failures []string
	)
	fail := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		mu.Lock()
		defer mu.Unlock()
		failures = append(failures, msg)
		fmt.Fprintln(out, "✗", msg)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(8)
	for _, server := range servers {
		server := server
		g.Go(func() error {
			v, err := checkServerVersion(ctx, client, server)
			if err != nil {
				fail("%s: %v", server, err)
				return nil
			}
			if v.NewerThan(apiversion.Current) {
				mu.Lock()
				fmt.Fprintf(out, "! %s serves API %s, newer than this client (%s)\n", server, v, apiversion.Current)
				mu.Unlock()
			}
			for _, key := range keys {
				rec, err := fetchSubject(ctx, client, server, key)
				if err != nil {
					fail("%s/%s: %v", server, key, err)
					continue
				}
				if rec == nil {
					continue
				}
				mu.Lock()
				subjects = append(subjects, ExportedSubject{Server: server, Key: key, Record: rec})
				fmt.Fprintf(out, "✓ Fetched: %s/%s\n", server, key)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(subjects) == 0 {
		return fmt.Errorf("no subjects retrieved")
	}

	snapshot := SubjectSnapshot{
		Subjects:    subjects,
		Timestamp:   nowFunc().UTC().Format(time.RFC3339),
		ServerCount: len(servers),
		Failures:    failures,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(exportFlags.file, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Fprintf(out, "\n✓ Exported %d subjects to %s\n", len(subjects), exportFlags.file)

	writeElementStats(out, subjects)
	return nil
}

// checkServerVersion returns the server's API version when this client can read it
func checkServerVersion(ctx context.Context, client *http.Client, server string) (apiversion.Version, error) {
	var sv serverVersion
	if err := getJSON(ctx, client, "http://"+server+"/api/version", &sv); err != nil {
		return apiversion.Version{}, err
	}
	v, err := apiversion.Parse(sv.API)
	if err != nil {
		return apiversion.Version{}, fmt.Errorf("unreadable API version: %w", err)
	}
	if !v.CompatibleWith(apiversion.Current) {
		return v, fmt.Errorf("incompatible API version %s (client reads %d.x)", v, apiversion.Current.Major)
	}
	return v, nil
}

// fetchSubject returns nil without error when the server has no such key
func fetchSubject(ctx context.Context, client *http.Client, server, key string) (json.RawMessage, error) {
	var rec json.RawMessage
	err := getJSON(ctx, client, "http://"+server+"/api/subjects/"+url.PathEscape(key), &rec)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	return rec, err
}

var errNotFound = errors.New("not found")

func getJSON(ctx context.Context, client *http.Client, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// writeElementStats prints the core element spread of every exported person
func writeElementStats(w io.Writer, subjects []ExportedSubject) {
	var counts saju.ElementCounts
	people := 0
	for _, s := range subjects {
		var rec storedRecord
		if err := json.Unmarshal(s.Record, &rec); err != nil {
			continue
		}
		for _, in := range []*saju.SubjectInput{rec.Self, rec.Parent, rec.Child} {
			if in == nil {
				continue
			}
			subject, err := in.Parse()
			if err != nil {
				continue
			}
			counts[subject.Profile.CoreElement]++
			people++
		}
	}
	if people == 0 {
		return
	}

	fmt.Fprintln(w, "\nCore Elements:")
	fmt.Fprintln(w, "==============")
	for _, e := range saju.Elements {
		if n := counts[e]; n > 0 {
			fmt.Fprintf(w, "%s (%s): %d (%.1f%%)\n", e, e.English(), n, float64(n)/float64(people)*100)
		}
	}
}

func splitCSV(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
