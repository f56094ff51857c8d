package forest

import (
	"fmt"
	"math"
)

// Classifier is a random-forest binary classifier over 0/1 targets.
// Immutable once trained; safe for concurrent use.
type Classifier struct {
	Trees       []*Node
	NumFeatures int
}

func TrainClassifier(x [][]float64, y []float64, opt Options) (*Classifier, error) {
	opt = opt.withDefaults()
	for i, v := range y {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("forest: classifier target %d is %v, want 0 or 1", i, v)
		}
	}
	if opt.MaxFeatures <= 0 && len(x) > 0 {
		// sqrt(p) candidate features per split, the usual classifier default.
		opt.MaxFeatures = int(math.Sqrt(float64(len(x[0]))))
		if opt.MaxFeatures < 1 {
			opt.MaxFeatures = 1
		}
	}
	trees, p, err := growForest(x, y, opt)
	if err != nil {
		return nil, err
	}
	return &Classifier{Trees: trees, NumFeatures: p}, nil
}

// PredictProba returns the class-1 probability: the mean of the per-tree
// leaf class-1 fractions, always in [0, 1].
func (c *Classifier) PredictProba(x []float64) (float64, error) {
	if len(x) != c.NumFeatures {
		return 0, fmt.Errorf("forest: got %d features, model trained on %d", len(x), c.NumFeatures)
	}
	sum := 0.0
	for _, t := range c.Trees {
		sum += t.predict(x)
	}
	return sum / float64(len(c.Trees)), nil
}
