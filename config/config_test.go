package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_BadJSONReturnsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected JSON error")
	}
	if cfg == nil || cfg.SampleIntervalMS != DefaultConfig().SampleIntervalMS {
		t.Fatalf("broken file should still yield defaults, got %+v", cfg)
	}
}

func TestValidate_ClampsOutOfRangeValues(t *testing.T) {
	cfg := &Config{
		CameraIndex:      -3,
		MinFaceSize:      0,
		ScoreThreshold:   -1,
		PyramidScale:     2.5,
		WindowStepX:      0,
		WindowStepY:      -1,
		SampleIntervalMS: 0,
		ToneHz:           0,
		ToneMS:           -10,
		PreviewMaxW:      10,
		PreviewMaxH:      10,
	}
	_ = cfg.Validate()
	def := DefaultConfig()
	if cfg.CameraIndex != 0 || cfg.MinFaceSize != def.MinFaceSize ||
		cfg.ScoreThreshold != def.ScoreThreshold || cfg.PyramidScale != def.PyramidScale ||
		cfg.WindowStepX != def.WindowStepX || cfg.WindowStepY != def.WindowStepY ||
		cfg.SampleIntervalMS != def.SampleIntervalMS || cfg.ToneHz != def.ToneHz ||
		cfg.ToneMS != def.ToneMS || cfg.PreviewMaxW != def.PreviewMaxW || cfg.PreviewMaxH != def.PreviewMaxH {
		t.Fatalf("validate did not clamp: %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.CameraIndex = 2
	cfg.SampleIntervalMS = 250
	cfg.ToneEnabled = false
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", cfg, loaded)
	}
}
