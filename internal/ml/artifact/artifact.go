// Package artifact persists trained forests as named gob files. Writes go
// to a temp file in the same directory and are renamed into place so a
// crashed run never leaves a half-written artifact behind.
package artifact

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartsales/smartsales-backend/internal/ml/forest"
)

// Role tags the three model slots.
type Role string

const (
	RoleCategoryDemand Role = "category-demand"
	RoleProductDemand  Role = "product-demand"
	RoleAffinity       Role = "affinity"
)

// FileName maps a role to its fixed artifact name. Re-training overwrites
// these wholesale; there is no versioning.
func FileName(role Role) string {
	switch role {
	case RoleCategoryDemand:
		return "sales_category_model.gob"
	case RoleProductDemand:
		return "demand_product_model.gob"
	case RoleAffinity:
		return "recommendation_model.gob"
	}
	return ""
}

func Path(dir string, role Role) string {
	return filepath.Join(dir, FileName(role))
}

func SaveRegressor(dir string, role Role, model *forest.Regressor) error {
	return save(dir, role, model)
}

func SaveClassifier(dir string, role Role, model *forest.Classifier) error {
	return save(dir, role, model)
}

func save(dir string, role Role, model interface{}) error {
	name := FileName(role)
	if name == "" {
		return fmt.Errorf("artifact: unknown role %q", role)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("artifact: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("artifact: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(model); err != nil {
		tmp.Close()
		return fmt.Errorf("artifact: encode %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("artifact: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("artifact: rename into place: %w", err)
	}
	return nil
}

func LoadRegressor(dir string, role Role) (*forest.Regressor, error) {
	var model forest.Regressor
	if err := load(dir, role, &model); err != nil {
		return nil, err
	}
	if len(model.Trees) == 0 {
		return nil, fmt.Errorf("artifact: %s holds no trees", FileName(role))
	}
	return &model, nil
}

func LoadClassifier(dir string, role Role) (*forest.Classifier, error) {
	var model forest.Classifier
	if err := load(dir, role, &model); err != nil {
		return nil, err
	}
	if len(model.Trees) == 0 {
		return nil, fmt.Errorf("artifact: %s holds no trees", FileName(role))
	}
	return &model, nil
}

func load(dir string, role Role, into interface{}) error {
	name := FileName(role)
	if name == "" {
		return fmt.Errorf("artifact: unknown role %q", role)
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("artifact: open %s: %w", name, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(into); err != nil {
		return fmt.Errorf("artifact: decode %s: %w", name, err)
	}
	return nil
}
