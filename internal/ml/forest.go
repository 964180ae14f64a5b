// README: Bootstrap-aggregated regression forest; the ensemble primitive
// behind fare and ETA estimation.
package ml

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Regressor is the capability the prediction pipeline is polymorphic
// over: fit once on a feature matrix, then map a feature vector to a
// scalar. Implementations must be safe for concurrent Predict calls
// after Fit has returned.
type Regressor interface {
	Fit(features [][]float64, labels []float64) error
	Predict(features []float64) float64
}

var (
	ErrEmptyTrainingSet = errors.New("ml: empty training set")
	ErrShapeMismatch    = errors.New("ml: features and labels length mismatch")
)

// ForestConfig controls ensemble size and tree growth. The zero value is
// not usable; call DefaultForestConfig and override as needed.
type ForestConfig struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

func DefaultForestConfig() ForestConfig {
	return ForestConfig{Trees: 100, MaxDepth: 12, MinLeaf: 2, Seed: 42}
}

// Forest averages bootstrap-sampled regression trees. A fixed Seed makes
// Fit fully deterministic: tree i draws its bootstrap from a source
// seeded with Seed+i.
type Forest struct {
	cfg   ForestConfig
	trees []*node
}

func NewForest(cfg ForestConfig) *Forest {
	return &Forest{cfg: cfg}
}

func (f *Forest) Fit(features [][]float64, labels []float64) error {
	if len(features) == 0 {
		return ErrEmptyTrainingSet
	}
	if len(features) != len(labels) {
		return ErrShapeMismatch
	}

	n := len(features)
	cfg := treeConfig{maxDepth: f.cfg.MaxDepth, minLeaf: f.cfg.MinLeaf}

	f.trees = make([]*node, f.cfg.Trees)
	for i := range f.trees {
		rng := rand.New(rand.NewSource(f.cfg.Seed + int64(i)))
		idx := make([]int, n)
		for j := range idx {
			idx[j] = rng.Intn(n)
		}
		f.trees[i] = growTree(features, labels, idx, 0, cfg)
	}
	return nil
}

func (f *Forest) Predict(features []float64) float64 {
	if len(f.trees) == 0 {
		return 0
	}
	votes := make([]float64, len(f.trees))
	for i, t := range f.trees {
		votes[i] = t.predict(features)
	}
	return stat.Mean(votes, nil)
}
