package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ironsheep/colorpick-mcp/internal/picker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Picker != (picker.Options{}) {
		t.Errorf("default picker options should all be off, got %+v", cfg.Picker)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[color_picker]
rgba = true
hsla = true

[loupe]
zoom = 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if want := (picker.Options{RGBA: true, HSLA: true}); cfg.Picker != want {
		t.Errorf("Picker: got %+v, want %+v", cfg.Picker, want)
	}
	if cfg.Loupe.Zoom != 4 || cfg.Loupe.Radius != 5 {
		t.Errorf("Loupe: got %+v, want radius 5 (default) and zoom 4", cfg.Loupe)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[color_picker]\nrgbaa = true\n", "unknown config keys"},
		{"bad syntax", "log_level = \n", "failed to read config"},
		{"wrong type", "[loupe]\nzoom = \"big\"\n", "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.Picker.HSLA = true

	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvLogLevel: "warn",
		EnvRGBA:     "true",
		EnvHEXA:     "1",
		EnvHSLA:     "false",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if want := (picker.Options{RGBA: true, HEXA: true}); cfg.Picker != want {
		t.Errorf("Picker: got %+v, want %+v", cfg.Picker, want)
	}
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := Default()
	cfg.Picker.RGBA = true

	if err := cfg.ApplyEnv(envMap(map[string]string{EnvRGBA: "", EnvLogLevel: ""})); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if !cfg.Picker.RGBA || cfg.LogLevel != "info" {
		t.Errorf("empty values should not override: %+v", cfg)
	}
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{EnvHEXA: "sometimes"}))
	if err == nil || !strings.Contains(err.Error(), EnvHEXA) {
		t.Errorf("expected error naming %s, got %v", EnvHEXA, err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	cfg.Loupe = Loupe{Radius: 0, Zoom: 100}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"log_level", "loupe.radius", "loupe.zoom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := (Config{LogLevel: tt.in}).Level(); got != tt.want {
			t.Errorf("Level(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
