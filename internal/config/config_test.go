package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Decode(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("embedded default does not decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded yaml and DefaultConfig disagree:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg PenguinConfig)
	}{
		{
			name:    "partial yaml keeps defaults",
			file:    "p.yaml",
			content: "storm:\n  duration: 20\n",
			check: func(t *testing.T, cfg PenguinConfig) {
				if cfg.Storm.Duration != 20 {
					t.Errorf("storm.duration = %v, expected 20", cfg.Storm.Duration)
				}
				if cfg.Storm.TransitionDuration != 2 {
					t.Errorf("unset key lost its default: %v", cfg.Storm.TransitionDuration)
				}
			},
		},
		{
			name:    "toml by extension",
			file:    "p.toml",
			content: "[scoring]\ncoin = 3\n",
			check: func(t *testing.T, cfg PenguinConfig) {
				if cfg.Scoring.Coin != 3 {
					t.Errorf("scoring.coin = %v, expected 3", cfg.Scoring.Coin)
				}
				if cfg.Scoring.StormCoin != 4 {
					t.Errorf("scoring.storm_coin = %v, expected 4", cfg.Scoring.StormCoin)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("storm:\n  duration: 1\n  transition_duration: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("storm shorter than its transition should fail validation")
	}
}

func TestEncodeRoundTripTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, DefaultConfig(), FormatTOML); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	cfg, err := Decode(buf.Bytes(), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("toml dump does not load back to the same config")
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	tests := []struct {
		height   float64
		expected float64
	}{
		{0, 0},
		{-50, 0},
		{1000, 1 - math.Pow(0.9995, 1000)},
		{10000, 1 - math.Pow(0.9995, 10000)},
		{1e5, math.Nextafter(1, 0)},
		{1e9, math.Nextafter(1, 0)},
		{math.Inf(1), math.Nextafter(1, 0)},
	}
	for _, tc := range tests {
		got := d.Level(tc.height)
		if math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Level(%v) = %v, expected %v", tc.height, got, tc.expected)
		}
		if got >= 1 {
			t.Errorf("Level(%v) = %v, must stay below 1", tc.height, got)
		}
	}

	prev := -1.0
	for h := 0.0; h < 20000; h += 137 {
		l := d.Level(h)
		if l < prev {
			t.Fatalf("Level not monotonic at %v", h)
		}
		if l < 0 || l >= 1 {
			t.Fatalf("Level(%v) = %v out of [0,1)", h, l)
		}
		prev = l
	}
}

func TestDifficultyNeverReachesOne(t *testing.T) {
	tests := []struct {
		name string
		cfg  DifficultyConfig
	}{
		{"floor near one", DifficultyConfig{Enabled: true, Base: 0.9995, Floor: 0.9999999}},
		{"floor of one", DifficultyConfig{Enabled: true, Base: 0.9995, Floor: 1}},
		{"fixed at one", DifficultyConfig{Enabled: false, Base: 0.9995, Floor: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			for _, h := range []float64{0, 1e3, 8e4, 1e9} {
				if l := d.Level(h); l >= 1 {
					t.Errorf("Level(%v) = %v, must stay below 1", h, l)
				}
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	d := NewDifficultyManager(cfg.Difficulty)
	if d.Level(0) != 0.7 {
		t.Errorf("hard floor = %v, expected 0.7", d.Level(0))
	}
	if d.Level(500) <= 0.7 {
		t.Error("hard preset should still grow with height")
	}

	ApplyPreset(&cfg, DifficultyFixed)
	d = NewDifficultyManager(cfg.Difficulty)
	if d.Level(5000) != 0.7 {
		t.Errorf("fixed preset should pin the floor, got %v", d.Level(5000))
	}

	if _, ok := ParsePreset("brutal"); ok {
		t.Error("unknown preset accepted")
	}
}
