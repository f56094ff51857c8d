package forest

import (
	"fmt"
)

// Regressor is a random-forest regressor. Immutable once trained; safe for
// concurrent Predict calls.
type Regressor struct {
	Trees       []*Node
	NumFeatures int
}

func TrainRegressor(x [][]float64, y []float64, opt Options) (*Regressor, error) {
	opt = opt.withDefaults()
	trees, p, err := growForest(x, y, opt)
	if err != nil {
		return nil, err
	}
	return &Regressor{Trees: trees, NumFeatures: p}, nil
}

// Predict averages the per-tree outputs. The caller rounds for display;
// training targets are never rounded.
func (r *Regressor) Predict(x []float64) (float64, error) {
	if len(x) != r.NumFeatures {
		return 0, fmt.Errorf("forest: got %d features, model trained on %d", len(x), r.NumFeatures)
	}
	sum := 0.0
	for _, t := range r.Trees {
		sum += t.predict(x)
	}
	return sum / float64(len(r.Trees)), nil
}
