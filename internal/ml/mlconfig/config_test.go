package mlconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("SMARTSALES_ML_CONFIG", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ModelDir != "ml_models" || cfg.Trees != 100 || cfg.Seed != 42 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Trees != 100 {
		t.Fatalf("trees = %d, want 100", cfg.Trees)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ml.yaml")
	body := "model_dir: /var/lib/smartsales/models\ntrees: 25\nseed: 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ModelDir != "/var/lib/smartsales/models" || cfg.Trees != 25 || cfg.Seed != 7 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ml.yaml")
	if err := os.WriteFile(path, []byte("trees: [not an int"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
