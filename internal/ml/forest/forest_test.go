package forest

import (
	"math"
	"testing"
)

// stepData builds a clearly separable one-feature dataset: y=10 below the
// split point, y=100 above it.
func stepData() ([][]float64, []float64) {
	var x [][]float64
	var y []float64
	for i := 0; i < 20; i++ {
		x = append(x, []float64{float64(i)})
		if i < 10 {
			y = append(y, 10)
		} else {
			y = append(y, 100)
		}
	}
	return x, y
}

func TestRegressorLearnsStep(t *testing.T) {
	x, y := stepData()
	model, err := TrainRegressor(x, y, Options{Trees: 50, Seed: 42})
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	low, err := model.Predict([]float64{3})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	high, err := model.Predict([]float64{15})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if math.Abs(low-10) > 15 {
		t.Fatalf("prediction below split = %v, want near 10", low)
	}
	if math.Abs(high-100) > 15 {
		t.Fatalf("prediction above split = %v, want near 100", high)
	}
}

func TestRegressorDeterministicForSeed(t *testing.T) {
	x, y := stepData()
	a, err := TrainRegressor(x, y, Options{Trees: 30, Seed: 42})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	b, err := TrainRegressor(x, y, Options{Trees: 30, Seed: 42})
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	for i := 0; i < 20; i++ {
		in := []float64{float64(i)}
		pa, _ := a.Predict(in)
		pb, _ := b.Predict(in)
		if pa != pb {
			t.Fatalf("same seed diverged at %v: %v != %v", in, pa, pb)
		}
	}
}

func TestRegressorInputValidation(t *testing.T) {
	x, y := stepData()
	model, err := TrainRegressor(x, y, Options{Trees: 5, Seed: 42})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if _, err := model.Predict([]float64{1, 2}); err == nil {
		t.Fatalf("expected error for wrong feature count")
	}
}

func TestTrainRegressorEmpty(t *testing.T) {
	if _, err := TrainRegressor(nil, nil, Options{}); err == nil {
		t.Fatalf("expected error on empty training set")
	}
}

func TestClassifierSeparates(t *testing.T) {
	var x [][]float64
	var y []float64
	for i := 0; i < 20; i++ {
		x = append(x, []float64{float64(i), float64(20 - i)})
		if i < 10 {
			y = append(y, 0)
		} else {
			y = append(y, 1)
		}
	}

	model, err := TrainClassifier(x, y, Options{Trees: 50, Seed: 42})
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	pLow, err := model.PredictProba([]float64{2, 18})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	pHigh, err := model.PredictProba([]float64{17, 3})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if pLow < 0 || pLow > 1 || pHigh < 0 || pHigh > 1 {
		t.Fatalf("probabilities out of [0,1]: %v, %v", pLow, pHigh)
	}
	if pLow >= 0.5 {
		t.Fatalf("proba for negative region = %v, want < 0.5", pLow)
	}
	if pHigh <= 0.5 {
		t.Fatalf("proba for positive region = %v, want > 0.5", pHigh)
	}
}

func TestClassifierRejectsNonBinaryTargets(t *testing.T) {
	x := [][]float64{{1}, {2}}
	y := []float64{0, 2}
	if _, err := TrainClassifier(x, y, Options{Trees: 5}); err == nil {
		t.Fatalf("expected error for non-binary target")
	}
}
