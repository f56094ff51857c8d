// Package mlconfig loads the training configuration. Everything has a
// default; a config file only needs the keys it overrides.
package mlconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smartsales/smartsales-backend/internal/ml/forest"
)

type Config struct {
	// ModelDir is where artifacts are written and loaded from.
	ModelDir string `yaml:"model_dir"`
	Trees    int    `yaml:"trees"`
	Seed     int64  `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		ModelDir: "ml_models",
		Trees:    forest.DefaultTrees,
		Seed:     forest.DefaultSeed,
	}
}

// Load reads the YAML file at path, or at $SMARTSALES_ML_CONFIG when path is
// empty. No file at all is fine: defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv("SMARTSALES_ML_CONFIG"))
	}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("mlconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("mlconfig: parse %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.ModelDir) == "" {
		cfg.ModelDir = "ml_models"
	}
	if cfg.Trees <= 0 {
		cfg.Trees = forest.DefaultTrees
	}
	if cfg.Seed == 0 {
		cfg.Seed = forest.DefaultSeed
	}
	return cfg, nil
}
