package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/idelchi/drivesize/internal/drivesize"
)

func makeDrive(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	for name, size := range map[string]int{"A/one": 10, "A/two": 20, "C.txt": 5} {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.Mkdir(filepath.Join(root, "B"), 0o755); err != nil {
		t.Fatal(err)
	}

	return root
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := New("v0.0.0-test").Command(viper.New())
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCommandLogOutput(t *testing.T) {
	root := makeDrive(t)
	logDir := filepath.Join(t.TempDir(), "logs")

	stdout, stderr, err := run(t, root, "--log-dir", logDir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Directory: " + filepath.Join(root, "A") + " Size: 0.0 MB",
		"Directory: " + filepath.Join(root, "B") + " Size: 0.0 KB",
		"Drive " + root + " has size 0.0 GB",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("console output missing %q:\n%s", want, stderr)
		}
	}

	if strings.Contains(stderr, "C.txt") {
		t.Errorf("file directly under the root was reported:\n%s", stderr)
	}

	if strings.TrimSpace(stdout) != "Export results?" {
		t.Errorf("stdout = %q, want the export prompt", stdout)
	}

	entries, err := os.ReadDir(logDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("log dir entries = %v (err %v), want one log file", entries, err)
	}

	data, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), " - DEBUG - Reading: ") {
		t.Errorf("log file has no debug lines:\n%s", data)
	}
}

func TestCommandJSONOutput(t *testing.T) {
	root := makeDrive(t)

	stdout, _, err := run(t, root, "--log-dir", t.TempDir(), "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var report drivesize.SizeReport
	if err := json.NewDecoder(strings.NewReader(stdout)).Decode(&report); err != nil {
		t.Fatalf("decoding %q: %v", stdout, err)
	}

	if len(report.Entries) != 2 {
		t.Errorf("entries = %v, want A and B", report.Entries)
	}

	var total int64
	for _, e := range report.Entries {
		total += e.Size
	}

	if total != 30 {
		t.Errorf("total = %d, want 30", total)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing root", args: []string{"--log-dir", "unused"}, want: "root path is required"},
		{name: "bad output", args: []string{"/tmp", "-o", "xml"}, want: "invalid output format"},
		{name: "bad threshold", args: []string{"/tmp", "--mb-threshold", "lots"}, want: "invalid mb-threshold"},
		{name: "threshold above GB", args: []string{"/tmp", "--mb-threshold", "2GiB"}, want: "exceeds the GB threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DRIVESIZE_ROOT_PATH", "")

			_, _, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Execute() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestCommandMissingRoot(t *testing.T) {
	_, _, err := run(t, filepath.Join(t.TempDir(), "nowhere"), "--log-dir", t.TempDir())
	if !drivesize.IsAccessError(err) {
		t.Errorf("Execute() error = %v, want FilesystemAccessError", err)
	}
}

func TestCommandEnvRoot(t *testing.T) {
	root := makeDrive(t)
	t.Setenv("DRIVESIZE_ROOT_PATH", root)
	t.Setenv("DRIVESIZE_OUTPUT", "json")

	stdout, _, err := run(t, "--log-dir", t.TempDir())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout, filepath.Join(root, "A")) {
		t.Errorf("stdout = %q, want report for %s", stdout, root)
	}
}

func TestCommandVersion(t *testing.T) {
	stdout, _, err := run(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if strings.TrimSpace(stdout) != "v0.0.0-test" {
		t.Errorf("stdout = %q, want version", stdout)
	}
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	report := &drivesize.SizeReport{
		Root: "/drive",
		Entries: []drivesize.DirectorySizeEntry{
			{Path: "/drive/A", Size: 3 << 19},
			{Path: "/drive/B", Size: 1 << 30},
		},
	}

	var buf bytes.Buffer
	if err := PrintTable(report, drivesize.DefaultThresholds, &buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	for _, want := range []string{"'/drive/A'", "1.5 MB", "1.5 MiB", "1.0 GB", "Total directories:  2", "Total size:"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	report := &drivesize.SizeReport{
		Root:    "/drive",
		Entries: []drivesize.DirectorySizeEntry{{Path: "/drive/A", Size: 30}},
	}

	var buf bytes.Buffer
	if err := PrintJSON(report, &buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), `"path": "/drive/A"`) || !strings.Contains(buf.String(), `"size": 30`) {
		t.Errorf("PrintJSON() = %s", buf.String())
	}
}
