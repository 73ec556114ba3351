package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/config"
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/geom"
	pio "github.com/matzehuels/pinboard/pkg/io"
	"github.com/matzehuels/pinboard/pkg/observability"
)

func testBoard() *board.Board {
	return &board.Board{
		Name:   "test",
		Canvas: geom.Canvas{Width: 1000, Height: 800},
		Blocks: []board.Block{
			{ID: "a", Label: "first", X: 10, Y: 10, Width: geom.Px(200), Height: geom.Px(100)},
			{ID: "b", Label: "second", X: 50, Y: 50, Width: geom.Px(100), Height: geom.Px(100)},
		},
	}
}

// writeTestBoard exports testBoard into a temp dir and returns its path.
func writeTestBoard(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := pio.ExportBoard(testBoard(), path); err != nil {
		t.Fatalf("ExportBoard() error: %v", err)
	}
	return path
}

// runCommand executes the root command with args and returns everything
// written to stdout and the command output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "")
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.toml")))

	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestResizeCommandJSON(t *testing.T) {
	path := writeTestBoard(t, "board.json")

	out, err := runCommand(t, "resize", path, "--block", "a", "--handle", "br", "--dx", "40", "--dy", "20", "--json")
	if err != nil {
		t.Fatalf("resize error: %v", err)
	}

	var got geom.Rect
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not a rect: %v\n%s", err, out)
	}
	want := geom.Rect{X: 10, Y: 10, Width: 240, Height: 120}
	if got != want {
		t.Errorf("rect = %+v, want %+v", got, want)
	}
}

func TestResizeCommandWritesBoard(t *testing.T) {
	path := writeTestBoard(t, "board.json")
	output := filepath.Join(filepath.Dir(path), "out.toml")

	out, err := runCommand(t, "resize", path, "-b", "a", "--handle", "tl", "--dx", "-20", "--dy", "-10", "-o", output)
	if err != nil {
		t.Fatalf("resize error: %v", err)
	}
	if !strings.Contains(out, "Resized") {
		t.Errorf("output missing summary:\n%s", out)
	}

	b, err := pio.ImportBoard(output)
	if err != nil {
		t.Fatalf("ImportBoard(%s) error: %v", output, err)
	}
	r, err := b.Rect("a")
	if err != nil {
		t.Fatalf("Rect(a) error: %v", err)
	}
	want := geom.Rect{X: 8, Y: 8.75, Width: 220, Height: 110}
	if r != want {
		t.Errorf("rect = %+v, want %+v", r, want)
	}
}

func TestResizeCommandErrors(t *testing.T) {
	path := writeTestBoard(t, "board.json")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown block", []string{"resize", path, "-b", "zz"}, errors.ErrCodeBlockNotFound},
		{"bad handle", []string{"resize", path, "-b", "a", "--handle", "middle"}, errors.ErrCodeInvalidHandle},
		{"missing board", []string{"resize", path + ".nope.json", "-b", "a"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRotateCommandJSON(t *testing.T) {
	path := writeTestBoard(t, "board.toml")

	// Block b is centered at (550, 450); a pointer straight to its right
	// points the block at 90 degrees.
	out, err := runCommand(t, "rotate", path, "-b", "b", "--mouse-x", "650", "--mouse-y", "450", "--json")
	if err != nil {
		t.Fatalf("rotate error: %v", err)
	}
	if !strings.Contains(out, "90") {
		t.Errorf("rotation missing from output:\n%s", out)
	}
}

func TestSnapCommandJSON(t *testing.T) {
	path := writeTestBoard(t, "board.json")
	preview := filepath.Join(filepath.Dir(path), "snap.svg")

	out, err := runCommand(t, "snap", path, "-b", "a", "--x", "0.4", "--y", "0.3", "--preview", preview, "--json")
	if err != nil {
		t.Fatalf("snap error: %v", err)
	}

	var res geom.SnapResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not a snap result: %v\n%s", err, out)
	}
	if res.X != 0 || res.Y != 0 {
		t.Errorf("snapped to (%v, %v), want (0, 0)", res.X, res.Y)
	}

	data, err := os.ReadFile(preview)
	if err != nil {
		t.Fatalf("preview not written: %v", err)
	}
	if !strings.Contains(string(data), `id="block-a"`) {
		t.Errorf("preview missing block a")
	}
}

const replayScript = `
name = "nudge"

[[step]]
kind = "move"
block = "a"
dx = 100

[[step]]
kind = "resize"
block = "b"
handle = "right"
dx = 50
`

func TestReplayCommand(t *testing.T) {
	path := writeTestBoard(t, "board.json")
	dir := filepath.Dir(path)
	script := filepath.Join(dir, "nudge.toml")
	if err := os.WriteFile(script, []byte(replayScript), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "replay", path, script)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if !strings.Contains(out, "nudge") {
		t.Errorf("output missing script name:\n%s", out)
	}

	b, err := pio.ImportBoard(filepath.Join(dir, "board.replayed.json"))
	if err != nil {
		t.Fatalf("replayed board: %v", err)
	}
	a, _ := b.Get("a")
	if a.X != 20 {
		t.Errorf("a.X = %v, want 20", a.X)
	}
	rb, _ := b.Rect("b")
	if rb.Width != 150 {
		t.Errorf("b width = %v, want 150", rb.Width)
	}
}

func TestReplayCommandDryRun(t *testing.T) {
	path := writeTestBoard(t, "board.json")
	dir := filepath.Dir(path)
	script := filepath.Join(dir, "nudge.toml")
	if err := os.WriteFile(script, []byte(replayScript), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "replay", path, script, "--dry-run", "--json")
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}

	var results []json.RawMessage
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not a result list: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
	if _, err := os.Stat(filepath.Join(dir, "board.replayed.json")); !os.IsNotExist(err) {
		t.Errorf("dry run wrote a board (stat err = %v)", err)
	}
}

func TestRenderCommandSVG(t *testing.T) {
	path := writeTestBoard(t, "board.json")

	if _, err := runCommand(t, "render", path, "--highlight", "b", "--safe-area"); err != nil {
		t.Fatalf("render error: %v", err)
	}

	data, err := os.ReadFile(derivedPath(path, ".svg"))
	if err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	for _, want := range []string{"<svg", `id="block-a"`, `id="block-b"`, "first"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderCommandErrors(t *testing.T) {
	path := writeTestBoard(t, "board.json")

	_, err := runCommand(t, "render", path, "-o", filepath.Join(filepath.Dir(path), "board.gif"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("gif output: error = %v, want INVALID_FORMAT", err)
	}

	_, err = runCommand(t, "render", path, "--highlight", "zz")
	if !errors.Is(err, errors.ErrCodeBlockNotFound) {
		t.Errorf("unknown highlight: error = %v, want BLOCK_NOT_FOUND", err)
	}
}

func TestResolveRenderOutput(t *testing.T) {
	tests := []struct {
		output, format string
		wantOut        string
		wantFormat     string
		wantErr        bool
	}{
		{"", "", "board.svg", "svg", false},
		{"", "PNG", "board.png", "png", false},
		{"x.pdf", "", "x.pdf", "pdf", false},
		{"x.out", "svg", "x.out", "svg", false},
		{"x.gif", "", "", "", true},
		{"", "jpeg", "", "", true},
	}
	for _, tt := range tests {
		out, format, err := resolveRenderOutput("board.json", tt.output, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveRenderOutput(%q, %q) error = %v, wantErr %v", tt.output, tt.format, err, tt.wantErr)
			continue
		}
		if out != tt.wantOut || format != tt.wantFormat {
			t.Errorf("resolveRenderOutput(%q, %q) = (%q, %q), want (%q, %q)",
				tt.output, tt.format, out, format, tt.wantOut, tt.wantFormat)
		}
	}
}

func TestHandlesCommand(t *testing.T) {
	out, err := runCommand(t, "handles")
	if err != nil {
		t.Fatalf("handles error: %v", err)
	}
	for _, want := range []string{"Handle", "nwse-resize", "ew-resize", "bottom-right", "left edge"} {
		if !strings.Contains(out, want) {
			t.Errorf("handles table missing %q:\n%s", want, out)
		}
	}
}

func TestAnchorOf(t *testing.T) {
	tests := map[geom.Handle]string{
		geom.HandleTopLeft:     "bottom-right",
		geom.HandleTopRight:    "bottom-left",
		geom.HandleBottomLeft:  "top-right",
		geom.HandleBottomRight: "top-left",
		geom.HandleTop:         "bottom edge",
		geom.HandleBottom:      "top edge",
		geom.HandleLeft:        "right edge",
		geom.HandleRight:       "left edge",
	}
	for h, want := range tests {
		if got := anchorOf(h); got != want {
			t.Errorf("anchorOf(%s) = %q, want %q", h, got, want)
		}
	}
}

func TestDerivedPath(t *testing.T) {
	tests := []struct{ in, suffix, want string }{
		{"board.json", ".svg", "board.svg"},
		{"dir/board.toml", ".replayed.toml", "dir/board.replayed.toml"},
		{"board", ".svg", "board.svg"},
	}
	for _, tt := range tests {
		if got := derivedPath(tt.in, tt.suffix); got != tt.want {
			t.Errorf("derivedPath(%q, %q) = %q, want %q", tt.in, tt.suffix, got, tt.want)
		}
	}
}
