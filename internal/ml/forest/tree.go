// Package forest implements the bootstrap-aggregated CART ensemble behind
// the three demand models: 100 trees by default, fixed seed, grown to purity.
package forest

import (
	"fmt"
	"math/rand"
	"sort"
)

// Node is a single decision-tree node. Fields are exported for gob.
type Node struct {
	Leaf      bool
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
	// Value is the leaf output: the mean target for regression trees, the
	// class-1 fraction for classification trees.
	Value float64
}

func (n *Node) predict(x []float64) float64 {
	for !n.Leaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

// Options control forest growth. Zero values take the defaults below.
type Options struct {
	Trees int
	Seed  int64
	// MaxFeatures is the number of candidate features per split; <=0 means
	// all features (the regressor default). Classifiers default to sqrt(p).
	MaxFeatures int
	MinLeaf     int
}

const (
	DefaultTrees = 100
	DefaultSeed  = 42
)

func (o Options) withDefaults() Options {
	if o.Trees <= 0 {
		o.Trees = DefaultTrees
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.MinLeaf <= 0 {
		o.MinLeaf = 1
	}
	return o
}

type builder struct {
	x           [][]float64
	y           []float64
	rng         *rand.Rand
	p           int
	maxFeatures int
	minLeaf     int
}

// grow builds one tree over the bootstrap sample idx. Splits minimize the
// weighted sum of squared errors; for 0/1 targets that orders candidate
// splits identically to Gini impurity, so one criterion serves both tree
// kinds.
func (b *builder) grow(idx []int) *Node {
	sum, sumSq := 0.0, 0.0
	for _, i := range idx {
		sum += b.y[i]
		sumSq += b.y[i] * b.y[i]
	}
	n := float64(len(idx))
	mean := sum / n
	sse := sumSq - sum*sum/n

	if sse <= 1e-12 || len(idx) < 2*b.minLeaf {
		return &Node{Leaf: true, Value: mean}
	}

	bestFeature := -1
	bestThreshold := 0.0
	bestSSE := sse
	var bestLeft, bestRight []int

	for _, f := range b.candidateFeatures() {
		order := make([]int, len(idx))
		copy(order, idx)
		sort.Slice(order, func(i, j int) bool { return b.x[order[i]][f] < b.x[order[j]][f] })

		sumL, sumSqL := 0.0, 0.0
		for k := 0; k < len(order)-1; k++ {
			i := order[k]
			sumL += b.y[i]
			sumSqL += b.y[i] * b.y[i]

			v, next := b.x[i][f], b.x[order[k+1]][f]
			if v == next {
				continue
			}
			nL := float64(k + 1)
			nR := n - nL
			if int(nL) < b.minLeaf || int(nR) < b.minLeaf {
				continue
			}
			sumR := sum - sumL
			sumSqR := sumSq - sumSqL
			split := (sumSqL - sumL*sumL/nL) + (sumSqR - sumR*sumR/nR)
			if split < bestSSE-1e-12 {
				bestSSE = split
				bestFeature = f
				bestThreshold = (v + next) / 2
				bestLeft = append([]int(nil), order[:k+1]...)
				bestRight = append([]int(nil), order[k+1:]...)
			}
		}
	}

	if bestFeature < 0 {
		return &Node{Leaf: true, Value: mean}
	}
	return &Node{
		Feature:   bestFeature,
		Threshold: bestThreshold,
		Left:      b.grow(bestLeft),
		Right:     b.grow(bestRight),
	}
}

func (b *builder) candidateFeatures() []int {
	if b.maxFeatures <= 0 || b.maxFeatures >= b.p {
		feats := make([]int, b.p)
		for i := range feats {
			feats[i] = i
		}
		return feats
	}
	perm := b.rng.Perm(b.p)
	feats := append([]int(nil), perm[:b.maxFeatures]...)
	sort.Ints(feats)
	return feats
}

func growForest(x [][]float64, y []float64, opt Options) ([]*Node, int, error) {
	if len(x) == 0 {
		return nil, 0, fmt.Errorf("forest: empty training set")
	}
	if len(x) != len(y) {
		return nil, 0, fmt.Errorf("forest: %d feature rows but %d targets", len(x), len(y))
	}
	p := len(x[0])
	if p == 0 {
		return nil, 0, fmt.Errorf("forest: rows have no features")
	}
	for i := range x {
		if len(x[i]) != p {
			return nil, 0, fmt.Errorf("forest: ragged feature row %d (%d != %d)", i, len(x[i]), p)
		}
	}

	trees := make([]*Node, opt.Trees)
	for t := range trees {
		// Per-tree rng derived from the forest seed keeps runs reproducible.
		rng := rand.New(rand.NewSource(opt.Seed + int64(t)*7919))
		idx := make([]int, len(x))
		for i := range idx {
			idx[i] = rng.Intn(len(x))
		}
		b := &builder{x: x, y: y, rng: rng, p: p, maxFeatures: opt.MaxFeatures, minLeaf: opt.MinLeaf}
		trees[t] = b.grow(idx)
	}
	return trees, p, nil
}
