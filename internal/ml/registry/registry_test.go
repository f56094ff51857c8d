package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/ml/artifact"
	"github.com/smartsales/smartsales-backend/internal/ml/forest"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestLoadEmptyDirLeavesSlotsEmpty(t *testing.T) {
	reg := Load(t.TempDir(), testLogger(t))

	if reg.CategoryModel() != nil {
		t.Fatalf("category slot should be empty")
	}
	if reg.ProductModel() != nil {
		t.Fatalf("product slot should be empty")
	}
	if reg.AffinityModel() != nil {
		t.Fatalf("affinity slot should be empty")
	}
}

func TestLoadPicksUpPresentArtifactsOnly(t *testing.T) {
	dir := t.TempDir()

	x := [][]float64{{1, 1, 0}, {1, 2, 3}, {2, 1, 1}, {2, 2, 4}}
	y := []float64{2, 5, 1, 6}
	model, err := forest.TrainRegressor(x, y, forest.Options{Trees: 5, Seed: 42})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if err := artifact.SaveRegressor(dir, artifact.RoleCategoryDemand, model); err != nil {
		t.Fatalf("save: %v", err)
	}

	reg := Load(dir, testLogger(t))
	if reg.CategoryModel() == nil {
		t.Fatalf("category model should be loaded")
	}
	if reg.ProductModel() != nil || reg.AffinityModel() != nil {
		t.Fatalf("absent artifacts must leave their slots empty")
	}

	// The loaded slot answers predictions.
	got, err := reg.CategoryModel().Predict([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	want, _ := model.Predict([]float64{1, 2, 3})
	if got != want {
		t.Fatalf("loaded model predicts %v, in-memory %v", got, want)
	}
}

func TestLoadCorruptArtifactLeavesSlotEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, artifact.FileName(artifact.RoleProductDemand))
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg := Load(dir, testLogger(t))
	if reg.ProductModel() != nil {
		t.Fatalf("corrupt artifact should leave the slot empty, not fail load")
	}
}
