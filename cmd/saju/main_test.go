package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saju-lab/internal/apiversion"
)

// execute runs the root command with fresh flag values
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	nowFunc = func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local) }
	t.Cleanup(func() { nowFunc = time.Now })

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestPillarsCmd(t *testing.T) {
	out, err := execute(t, "pillars", "--birth-date", "1990-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, "경오")
	assert.Contains(t, out, "경술 (庚戌)")
	assert.Contains(t, out, "(unknown)")
	assert.Contains(t, out, "Zodiac 말")
}

func TestPillarsCmd_RequiresBirthDate(t *testing.T) {
	_, err := execute(t, "pillars")
	assert.Error(t, err)
}

func TestDailyCmd_JSON(t *testing.T) {
	out, err := execute(t, "daily", "--birth-date", "1990-01-15", "-o", "json")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "2026-10-19", res["evaluation_date"])
	assert.Equal(t, "same_element", res["relation"].(map[string]any)["class"])
}

func TestDailyCmd_YAML(t *testing.T) {
	out, err := execute(t, "daily", "--birth-date", "1990-01-15", "--date", "2026-10-19", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: daily")
	assert.Contains(t, out, "2026-10-19")
}

func TestDailyCmd_Errors(t *testing.T) {
	_, err := execute(t, "daily", "--birth-date", "1990-13-01")
	assert.Error(t, err)

	_, err = execute(t, "daily", "--birth-date", "1990-01-15", "--date", "someday")
	assert.Error(t, err)

	_, err = execute(t, "daily", "--birth-date", "1990-01-15", "-o", "xml")
	assert.Error(t, err)
}

func TestFamilyCmd(t *testing.T) {
	out, err := execute(t, "family",
		"--parent-birth-date", "1960-03-03", "--child-birth-date", "1990-01-15",
		"--parent-name", "엄마", "--child-name", "하늘")
	require.NoError(t, err)
	assert.Contains(t, out, "엄마 & 하늘, 2026-10-19")
	assert.Contains(t, out, "academic")

	_, err = execute(t, "family", "--parent-birth-date", "1960-03-03")
	assert.Error(t, err, "child is required")
}

func TestAnnualCmd(t *testing.T) {
	out, err := execute(t, "annual", "--birth-date", "1990-01-15", "--gender", "female")
	require.NoError(t, err)
	assert.Contains(t, out, "2026 병오")
	assert.Contains(t, out, "level 4")
}

func TestCalendarCmd(t *testing.T) {
	out, err := execute(t, "calendar", "--birth-date", "1990-01-15", "--year", "2024", "--month", "2", "-o", "json")
	require.NoError(t, err)

	var cal map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cal))
	assert.Len(t, cal["days"], 29)
}

func TestCompatCmd(t *testing.T) {
	out, err := execute(t, "compat", "--a-birth-date", "1990-01-15", "--b-birth-date", "1990-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, "길한 인연, 75")
}

func TestBatchCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subjects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
subjects:
  - name: 지민
    birth_date: "1990-01-15"
  - name: 하늘
    birth_date: "2015-07-20"
    birth_time: "08:00"
`), 0o644))

	out, err := execute(t, "batch", "-i", path, "-o", "json")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "지민", entries[0]["name"])
	assert.Equal(t, "하늘", entries[1]["name"])

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("subjects:\n  - birth_date: \"1990-02-30\"\n"), 0o644))
	_, err = execute(t, "batch", "-i", bad)
	assert.Error(t, err)
}

func TestExportCmd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"api":"1.3.0"}`))
	})
	mux.HandleFunc("/api/subjects/home", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":2,"parent":{"birth_date":"1960-03-03"},"child":{"birth_date":"1990-01-15"}}`))
	})
	mux.HandleFunc("/api/subjects/missing", http.NotFound)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	old := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"api":"0.9.0"}`))
	}))
	defer old.Close()

	file := filepath.Join(t.TempDir(), "snapshot.json")
	out, err := execute(t, "export",
		"--servers", strings.TrimPrefix(srv.URL, "http://")+","+strings.TrimPrefix(old.URL, "http://"),
		"--keys", "home,missing",
		"--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 subjects")
	assert.Contains(t, out, "incompatible API version 0.9.0")
	assert.Contains(t, out, "금 (metal): 2")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	var snap SubjectSnapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.Subjects, 1)
	assert.Equal(t, 2, snap.ServerCount)
	assert.Len(t, snap.Failures, 1)
}

func TestCheckServerVersion(t *testing.T) {
	tests := []struct {
		served  string
		want    apiversion.Version
		wantErr string
	}{
		{served: "1.3.0", want: apiversion.Version{Major: 1, Minor: 3}},
		{served: "v1.9.2", want: apiversion.Version{Major: 1, Minor: 9, Patch: 2}},
		{served: "2.0.0", wantErr: "incompatible API version 2.0.0"},
		{served: "0.9.0", wantErr: "incompatible API version 0.9.0"},
		{served: "dev", wantErr: "unreadable API version"},
	}

	for _, tt := range tests {
		t.Run(tt.served, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"api": tt.served})
			}))
			defer srv.Close()

			got, err := checkServerVersion(context.Background(), srv.Client(), strings.TrimPrefix(srv.URL, "http://"))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportCmd_WarnsOnNewerServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"api":"1.9.0"}`))
	})
	mux.HandleFunc("/api/subjects/home", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":2,"self":{"birth_date":"1990-01-15"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	out, err := execute(t, "export", "--servers", addr, "--keys", "home",
		"--file", filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)
	assert.Contains(t, out, addr+" serves API 1.9.0, newer than this client (1.3.0)")
	assert.Contains(t, out, "Exported 1 subjects")
}
