package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HendryAvila/itra-gateway/internal/config"
)

const scenarioB = `asset_type: it_system
B.2: "Yes"
T.6: "No"
B.3: "Yes"
S.1: 2
B.13: High
D.1: "Yes"
D.2: "Yes"
`

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv(config.EnvExportDir, "")
	t.Setenv(config.EnvExportFormat, "")
	t.Setenv(config.EnvLogLevel, "")

	configPath, logLevel = "", ""
	planAnswersPath, planJSON = "", false
	exportAnswersPath, exportFormat, exportDir, exportStartedAt, exportStdout = "", "", "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write answers: %v", err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "itra v") {
		t.Errorf("output = %q", out)
	}
}

func TestPlan_Text(t *testing.T) {
	out, err := execute(t, "plan", "--answers", writeAnswers(t, scenarioB))
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	for _, want := range []string{"Total questions: 53", "Enabled tracks:  6", "26-53 minutes", "[x] GxP Compliance Assessment"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output should contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "incomplete") {
		t.Error("complete answers should not be flagged incomplete")
	}
}

func TestPlan_JSONEmptyAnswers(t *testing.T) {
	out, err := execute(t, "plan", "--json", "--answers", writeAnswers(t, "{}\n"))
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	var plan struct {
		TotalQuestions int `json:"total_questions"`
		EnabledTracks  int `json:"enabled_tracks"`
	}
	if err := json.Unmarshal([]byte(out), &plan); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if plan.TotalQuestions != 25 || plan.EnabledTracks != 1 {
		t.Errorf("plan = %+v, want 25 questions over 1 track", plan)
	}
}

func TestPlan_InvalidAnswer(t *testing.T) {
	if _, err := execute(t, "plan", "--answers", writeAnswers(t, "B.2: maybe\n")); err == nil {
		t.Error("plan should reject an invalid answer")
	}
}

func TestPlan_RequiresAnswers(t *testing.T) {
	if _, err := execute(t, "plan"); err == nil {
		t.Error("plan without --answers should fail")
	}
}

func TestExport_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out, err := execute(t, "export",
		"--answers", writeAnswers(t, scenarioB),
		"--dir", dir,
		"--format", "yaml",
		"--started-at", "2026-03-01T09:00:00Z",
	)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	path := strings.TrimSpace(out)
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, ".yaml") {
		t.Fatalf("unexpected export path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{"start_time:", "2026-03-01T09:00:00.000000Z", "estimated_time_minutes:", "26-53"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export should contain %q\n%s", want, data)
		}
	}
}

func TestExport_Stdout(t *testing.T) {
	out, err := execute(t, "export", "--stdout", "--answers", writeAnswers(t, scenarioB))
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("stdout export is not JSON: %v", err)
	}
	summary := doc["summary"].(map[string]any)
	if summary["total_questions"] != float64(53) {
		t.Errorf("total_questions = %v, want 53", summary["total_questions"])
	}
}

func TestExport_BadFlags(t *testing.T) {
	answers := writeAnswers(t, scenarioB)
	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"--format", "xml"}},
		{"started-at", []string{"--started-at", "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"export", "--stdout", "--answers", answers}, tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Errorf("export with bad --%s should fail", tt.name)
			}
		})
	}
}
