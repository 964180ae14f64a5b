// README: Trains the fare/ETA model pair on a synthetic dataset.
package predict

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"farecast/internal/ml"
	"farecast/internal/modules/dataset"
)

// TrainerConfig fixes dataset size, ensemble size, and the seed that
// makes a training run reproducible.
type TrainerConfig struct {
	Samples int
	Trees   int
	Seed    int64
}

func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{Samples: dataset.DefaultSamples, Trees: 100, Seed: 42}
}

// ModelPair holds the two independent regressors. Created once, never
// mutated afterwards; retraining replaces the pair wholesale.
type ModelPair struct {
	Fare ml.Regressor
	ETA  ml.Regressor

	// Holdout mean absolute errors, recorded as diagnostics only.
	FareMAE float64
	ETAMAE  float64
}

// Train synthesises the dataset, carves off a 20% holdout, and fits the
// fare and ETA forests on the remaining 80%. Identical config produces
// identical models.
func Train(cfg TrainerConfig) (*ModelPair, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	samples := dataset.NewGenerator(rng).Samples(cfg.Samples)
	if len(samples) == 0 {
		return nil, fmt.Errorf("train: generator produced no samples")
	}

	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})

	split := len(samples) * 4 / 5
	if split == 0 {
		split = len(samples)
	}
	train, holdout := samples[:split], samples[split:]

	features := make([][]float64, len(train))
	fares := make([]float64, len(train))
	etas := make([]float64, len(train))
	for i, s := range train {
		features[i] = s.Features()
		fares[i] = s.Fare
		etas[i] = s.ETAMinutes
	}

	fareModel := ml.NewForest(ml.ForestConfig{Trees: cfg.Trees, MaxDepth: 12, MinLeaf: 2, Seed: cfg.Seed})
	if err := fareModel.Fit(features, fares); err != nil {
		return nil, fmt.Errorf("train fare model: %w", err)
	}
	etaModel := ml.NewForest(ml.ForestConfig{Trees: cfg.Trees, MaxDepth: 12, MinLeaf: 2, Seed: cfg.Seed})
	if err := etaModel.Fit(features, etas); err != nil {
		return nil, fmt.Errorf("train eta model: %w", err)
	}

	pair := &ModelPair{Fare: fareModel, ETA: etaModel}
	pair.FareMAE = meanAbsError(fareModel, holdout, func(s dataset.TripSample) float64 { return s.Fare })
	pair.ETAMAE = meanAbsError(etaModel, holdout, func(s dataset.TripSample) float64 { return s.ETAMinutes })
	return pair, nil
}

func meanAbsError(model ml.Regressor, holdout []dataset.TripSample, label func(dataset.TripSample) float64) float64 {
	if len(holdout) == 0 {
		return 0
	}
	errs := make([]float64, len(holdout))
	for i, s := range holdout {
		errs[i] = math.Abs(model.Predict(s.Features()) - label(s))
	}
	return stat.Mean(errs, nil)
}
