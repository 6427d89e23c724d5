package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Side != 200 || cfg.Pixel != 5 || cfg.Rate != 60 || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestBindOverridesFromFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-side", "32", "-pixel", "2", "-rate", "5", "-seed", "7"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Side != 32 || cfg.Pixel != 2 || cfg.Rate != 5 || cfg.Seed != 7 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"side": 50, "rate": 12}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Side != 50 || cfg.Rate != 12 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Pixel != 5 {
		t.Fatalf("pixel=%d, defaults must survive a partial file", cfg.Pixel)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing config file must error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny side", func(c *Config) { c.Side = 2 }},
		{"zero pixel", func(c *Config) { c.Pixel = 0 }},
		{"zero rate", func(c *Config) { c.Rate = 0 }},
	} {
		cfg := NewConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate must fail", tc.name)
		}
	}
}
