package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/geom"
)

func TestDefaultConfigMatchesEngine(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got, want := cfg.SnapOptions(), geom.DefaultSnapOptions(); got != want {
		t.Errorf("SnapOptions() = %+v, want %+v", got, want)
	}
	if got, want := cfg.Bounds(), geom.DefaultBounds; got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if cfg.Rotation.Snap {
		t.Error("rotation snap should default to off")
	}
}

func TestLoadFromReader(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	input := `
[snap]
threshold = 2
grid_size = 5

[size]
max_width = 800

[rotation]
snap = true

[log]
level = "debug"
`
	cfg, err := LoadFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Snap.Threshold != 2 || cfg.Snap.GridSize != 5 {
		t.Errorf("snap = %+v", cfg.Snap)
	}
	if cfg.Snap.SafeArea != 40 {
		t.Errorf("safe_area = %v, want default 40", cfg.Snap.SafeArea)
	}
	if cfg.Size.MaxWidth != 800 || cfg.Size.MinWidth != 40 {
		t.Errorf("size = %+v", cfg.Size)
	}
	if !cfg.Rotation.Snap {
		t.Error("rotation.snap not applied")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFromReaderErrors(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "[snap\nthreshold = 1"},
		{"unknown key", "[snap]\nmagnet = 3"},
		{"negative threshold", "[snap]\nthreshold = -1"},
		{"inverted sizes", "[size]\nmin_width = 500\nmax_width = 100"},
		{"zero minimum", "[size]\nmin_height = 0"},
		{"bad level", "[log]\nlevel = \"loud\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "WARN")
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Snap.GridSize != 2.5 {
		t.Errorf("grid_size = %v, want default", cfg.Snap.GridSize)
	}
}

func TestLoadUsesXDG(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "pinboard", "config.toml")
	if Path() != path {
		t.Errorf("Path() = %q, want %q", Path(), path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[snap]\ngrid_size = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Snap.GridSize != 10 {
		t.Errorf("grid_size = %v, want 10", cfg.Snap.GridSize)
	}
}

func TestCacheSettings(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg := DefaultConfig()
	if !cfg.Cache.Enabled {
		t.Error("cache should default to enabled")
	}
	if !strings.HasSuffix(cfg.CacheDir(), appName) {
		t.Errorf("CacheDir() = %q, want a %s directory", cfg.CacheDir(), appName)
	}

	cfg, err := LoadFromReader(strings.NewReader("[cache]\nenabled = false\ndir = \"/tmp/previews\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled = false not applied")
	}
	if cfg.CacheDir() != "/tmp/previews" {
		t.Errorf("CacheDir() = %q, want /tmp/previews", cfg.CacheDir())
	}
}
