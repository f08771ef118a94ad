package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"text format", Config{Output: OutputConfig{Format: "text"}}, false},
		{"json format", Config{Output: OutputConfig{Format: "json"}}, false},
		{"bad format", Config{Output: OutputConfig{Format: "xml"}}, true},
		{"watch interval", Config{Watch: WatchConfig{IntervalMs: 500}}, false},
		{"negative interval", Config{Watch: WatchConfig{IntervalMs: -1}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(&c.cfg)
			if (err != nil) != c.wantErr {
				t.Fatalf("Validate() err=%v, wantErr=%v", err, c.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psumon.yaml")
	raw := []byte("device:\n  path: /dev/hidraw3\noutput:\n  format: json\nwatch:\n  interval_ms: 2000\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}

	if cfg.Device.Path != "/dev/hidraw3" {
		t.Fatalf("device.path = %q", cfg.Device.Path)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("output.format = %q", cfg.Output.Format)
	}
	if cfg.Interval() != 2*time.Second {
		t.Fatalf("interval = %v, want 2s", cfg.Interval())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
