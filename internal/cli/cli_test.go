package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/graph"
	"github.com/matzehuels/movergraph/pkg/interaction"
	"github.com/matzehuels/movergraph/pkg/observability"
	"github.com/matzehuels/movergraph/pkg/pipeline"
)

const fixture = "testdata/methylamine.sdf"

// execute runs the root command with args against a fresh cache directory
// and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := execute(t, "plan", fixture, "--no-cache", "--table")
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	for _, want := range []string{"Movers", "Components", "Largest", "fresh", "tetrahedral-methyl", "nh3"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanCommandJSON(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	jsonPath := filepath.Join(t.TempDir(), "plan.json")

	if _, err := execute(t, "plan", fixture, "--no-cache", "--exact", "--probe", "0.3", "--json", jsonPath); err != nil {
		t.Fatalf("plan error: %v", err)
	}

	p, err := graph.ReadPlanFile(jsonPath)
	if err != nil {
		t.Fatalf("ReadPlanFile() error: %v", err)
	}
	if len(p.Movers) != 2 {
		t.Errorf("movers = %d, want 2", len(p.Movers))
	}
	if p.Algorithm != string(interaction.AlgorithmExact) {
		t.Errorf("algorithm = %q, want exact", p.Algorithm)
	}
	if p.ProbeRadius != 0.3 {
		t.Errorf("probe radius = %v, want 0.3", p.ProbeRadius)
	}
}

func TestPlanCommandCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	first, err := execute(t, "plan", fixture)
	if err != nil {
		t.Fatalf("first plan error: %v", err)
	}
	if !strings.Contains(first, iconFresh) {
		t.Errorf("first run not fresh:\n%s", first)
	}

	second, err := execute(t, "plan", fixture)
	if err != nil {
		t.Fatalf("second plan error: %v", err)
	}
	if !strings.Contains(second, iconCached) {
		t.Errorf("second run not cached:\n%s", second)
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	third, err := execute(t, "plan", fixture)
	if err != nil {
		t.Fatalf("third plan error: %v", err)
	}
	if !strings.Contains(third, iconFresh) {
		t.Errorf("run after clear not fresh:\n%s", third)
	}
}

func TestPlanCommandErrors(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
		code apperrors.Code
	}{
		{"missing file", []string{"plan", "testdata/absent.sdf"}, apperrors.ErrCodeFileNotFound},
		{"wrong extension", []string{"plan", "testdata/plan.pdb"}, apperrors.ErrCodeInvalidPath},
		{"missing config", []string{"plan", fixture, "--config", "testdata/absent.toml"}, apperrors.ErrCodeFileNotFound},
		{"negative workers", []string{"plan", fixture, "--workers=-1"}, apperrors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !apperrors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestGraphCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := execute(t, "graph", fixture, "--no-cache")
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}
	if !strings.HasPrefix(out, "graph G {") {
		t.Errorf("stdout is not DOT:\n%s", out)
	}
	if !strings.Contains(out, "m0 -- m1;") {
		t.Errorf("DOT missing edge:\n%s", out)
	}
}

func TestGraphCommandOutput(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	tests := []struct {
		file   string
		prefix string
	}{
		{"g.dot", "graph G {"},
		{"g.json", "{"},
		{"g.svg", "<svg"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if _, err := execute(t, "graph", fixture, "--no-cache", "--clusters", "-o", path); err != nil {
				t.Fatalf("graph error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if !strings.Contains(string(data), tt.prefix) {
				t.Errorf("%s does not contain %q", tt.file, tt.prefix)
			}
		})
	}

	if _, err := execute(t, "graph", fixture, "-o", filepath.Join(dir, "g.txt")); err == nil {
		t.Error("graph -o g.txt should fail")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.dot", pipeline.FormatDOT, false},
		{"out.gv", pipeline.FormatDOT, false},
		{"OUT.SVG", pipeline.FormatSVG, false},
		{"dir/out.png", pipeline.FormatPNG, false},
		{"out.json", pipeline.FormatJSON, false},
		{"out.pdf", "", true},
		{"out", "", true},
	}
	for _, tt := range tests {
		got, err := formatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("formatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSettingsFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(cfgPath, []byte("graph = \"exact\"\nprobe_radius = 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		args      []string
		wantGraph interaction.Algorithm
		wantProbe float64
	}{
		{"defaults", nil, interaction.AlgorithmApproximate, interaction.DefaultProbeRadius},
		{"exact flag", []string{"--exact"}, interaction.AlgorithmExact, interaction.DefaultProbeRadius},
		{"file", []string{"--config", cfgPath}, interaction.AlgorithmExact, 0.5},
		{"flag overrides file", []string{"--config", cfgPath, "--probe", "0.1"}, interaction.AlgorithmExact, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f settingsFlags
			cmd := &cobra.Command{Use: "test"}
			f.register(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error: %v", err)
			}
			cfg, err := f.load(cmd)
			if err != nil {
				t.Fatalf("load() error: %v", err)
			}
			if cfg.Graph != tt.wantGraph || cfg.ProbeRadius != tt.wantProbe {
				t.Errorf("got graph %q probe %v, want %q %v", cfg.Graph, cfg.ProbeRadius, tt.wantGraph, tt.wantProbe)
			}
		})
	}
}

func TestCachePathCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(xdg, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestSetLogLevelDebug(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)
	defer observability.Reset()
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
	if _, ok := observability.Pipeline().(*observability.LogHooks); !ok {
		t.Error("debug level did not install log hooks")
	}
}
