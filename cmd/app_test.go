package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/voidcut/pkg/config"
	"github.com/chazu/voidcut/pkg/opening"
	"github.com/sirupsen/logrus/hooks/test"
)

const (
	singleScene = "../examples/single.lisp"
	houseScene  = "../examples/house.lisp"
)

func newTestApp(input string) (*App, *bytes.Buffer) {
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	return NewApp(config.Default(), log, strings.NewReader(input), &out), &out
}

// TestE2ESingleScene runs the whole pipeline: scene file, engine, document,
// batch, report.
func TestE2ESingleScene(t *testing.T) {
	app, out := newTestApp("")

	report, doc, err := app.Cut(CutOptions{Scene: singleScene, Wall: "W1"})
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}
	if !report.Committed || len(report.Openings) != 1 {
		t.Fatalf("report = %+v", report)
	}
	if len(doc.Placeholders()) != 0 {
		t.Errorf("placeholder should be deleted, %d left", len(doc.Placeholders()))
	}
	want := "opening A: min (0.1, 3, 1) max (0.1, 4, 2)"
	if !strings.Contains(out.String(), want) {
		t.Errorf("output %q missing %q", out.String(), want)
	}
}

func TestE2EHouse(t *testing.T) {
	tests := []struct {
		wall         string
		wantOpenings []string
		wantSkipped  []string
	}{
		{
			wall: "north",
			wantOpenings: []string{
				"opening win-1: min (0.1, 2, 1) max (0.1, 3.2, 2.2)",
				"opening win-2: min (0.1, 6, 1) max (0.1, 7.2, 2.2)",
			},
			wantSkipped: []string{"skipped broken:"},
		},
		{
			wall:         "east",
			wantOpenings: []string{"opening door: min (3, -0.1, 0) max (4, -0.1, 2.1)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.wall, func(t *testing.T) {
			app, out := newTestApp("")
			report, doc, err := app.Cut(CutOptions{Scene: houseScene, Wall: tt.wall})
			if err != nil {
				t.Fatalf("Cut failed: %v", err)
			}
			if len(report.Openings) != len(tt.wantOpenings) || len(report.Skipped) != len(tt.wantSkipped) {
				t.Fatalf("got %d openings and %d skipped:\n%s", len(report.Openings), len(report.Skipped), out)
			}
			for _, want := range append(tt.wantOpenings, tt.wantSkipped...) {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			if got := len(doc.Openings()); got != len(tt.wantOpenings) {
				t.Errorf("document has %d openings", got)
			}
		})
	}
}

func TestCutPromptsForWall(t *testing.T) {
	app, out := newTestApp("2\n")
	report, _, err := app.Cut(CutOptions{Scene: houseScene})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Select Wall:") {
		t.Errorf("prompt not shown:\n%s", out)
	}
	if len(report.Openings) != 1 || !strings.Contains(out.String(), "opening door") {
		t.Errorf("expected the east wall door:\n%s", out)
	}
}

func TestCutCancelled(t *testing.T) {
	for _, input := range []string{"q\n", "\n", ""} {
		app, _ := newTestApp(input)
		report, doc, err := app.Cut(CutOptions{Scene: singleScene})
		if err != opening.ErrUserCancelled {
			t.Fatalf("input %q: err = %v, want ErrUserCancelled", input, err)
		}
		if report != nil {
			t.Errorf("input %q: expected no report", input)
		}
		if len(doc.Placeholders()) != 1 || len(doc.History()) != 0 {
			t.Errorf("input %q: scene changed", input)
		}
	}
}

func TestCutDryRun(t *testing.T) {
	app, out := newTestApp("")
	report, doc, err := app.Cut(CutOptions{Scene: houseScene, Wall: "north", DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if !report.DryRun || report.Committed {
		t.Errorf("report = %+v", report)
	}
	if len(doc.Placeholders()) != 4 || len(doc.Openings()) != 0 {
		t.Error("dry run changed the scene")
	}
	if !strings.Contains(out.String(), "would cut win-1") {
		t.Errorf("output:\n%s", out)
	}
}

func TestCutOutputs(t *testing.T) {
	dir := t.TempDir()
	opts := CutOptions{
		Scene: houseScene,
		Wall:  "north",
		DXF:   filepath.Join(dir, "north.dxf"),
		SVG:   filepath.Join(dir, "north.svg"),
		Mesh:  filepath.Join(dir, "house.json"),
	}

	app, _ := newTestApp("")
	if _, _, err := app.Cut(opts); err != nil {
		t.Fatal(err)
	}

	for path, want := range map[string]string{
		opts.DXF:  "OPENING",
		opts.SVG:  "<svg",
		opts.Mesh: `"kind": "opening"`,
	} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("%s not written: %v", filepath.Base(path), err)
			continue
		}
		if !strings.Contains(string(data), want) {
			t.Errorf("%s missing %q", filepath.Base(path), want)
		}
	}
}

func TestCutUnknownMesher(t *testing.T) {
	app, _ := newTestApp("")
	_, _, err := app.Cut(CutOptions{Scene: singleScene, Wall: "W1", Mesher: "voxels"})
	if err == nil || !strings.Contains(err.Error(), "unknown mesher") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	app, _ := newTestApp("")

	if _, err := app.LoadScene(filepath.Join(t.TempDir(), "absent.lisp")); err == nil {
		t.Error("expected error for missing scene")
	}

	bad := filepath.Join(t.TempDir(), "bad.lisp")
	if err := os.WriteFile(bad, []byte(`(wall "W" :start (vec3 0 0 0))`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := app.LoadScene(bad)
	if err == nil || !strings.Contains(err.Error(), ErrSceneInvalid.Error()) {
		t.Errorf("err = %v, want scene error", err)
	}
}

func TestWalls(t *testing.T) {
	app, _ := newTestApp("")
	walls, err := app.Walls(houseScene)
	if err != nil {
		t.Fatal(err)
	}
	if len(walls) != 2 {
		t.Fatalf("got %d walls", len(walls))
	}
	if walls[0].Name != "north" || walls[0].Placeholders != 3 || walls[0].Length != 10 {
		t.Errorf("north = %+v", walls[0])
	}
	if walls[1].Name != "east" || walls[1].Placeholders != 1 {
		t.Errorf("east = %+v", walls[1])
	}
}

func TestCommands(t *testing.T) {
	missingConfig := filepath.Join(t.TempDir(), "voidcut.toml")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"version", []string{"version"}, "voidcut v"},
		{"walls", []string{"walls", "--scene", houseScene, "--config", missingConfig}, "north"},
		{"dry run", []string{"cut", "--scene", singleScene, "--wall", "W1", "--dry-run", "--config", missingConfig}, "would cut A"},
		{"cut", []string{"cut", "--scene", singleScene, "--wall", "W1", "--dry-run=false", "--config", missingConfig}, "1 opening(s) inserted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(tt.args)
			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("execute %v: %v", tt.args, err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}
