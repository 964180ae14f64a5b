package ml

import (
	"math"
	"math/rand"
	"testing"
)

// trainLinear fits a forest on y = 3*x0 + 2*x1 + 10 over a dense grid.
func trainLinear(t *testing.T, cfg ForestConfig) *Forest {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	var features [][]float64
	var labels []float64
	for i := 0; i < 600; i++ {
		x0 := rng.Float64() * 50
		x1 := rng.Float64() * 20
		features = append(features, []float64{x0, x1})
		labels = append(labels, 3*x0+2*x1+10)
	}
	f := NewForest(cfg)
	if err := f.Fit(features, labels); err != nil {
		t.Fatalf("fit: %v", err)
	}
	return f
}

func TestForestRecoversLinearFunction(t *testing.T) {
	cfg := DefaultForestConfig()
	cfg.Trees = 25
	f := trainLinear(t, cfg)

	tests := []struct {
		x    []float64
		want float64
	}{
		{[]float64{10, 5}, 50},
		{[]float64{25, 10}, 105},
		{[]float64{40, 15}, 160},
	}
	for _, tt := range tests {
		got := f.Predict(tt.x)
		if math.Abs(got-tt.want) > 12 {
			t.Errorf("Predict(%v) = %.2f, want %.2f ±12", tt.x, got, tt.want)
		}
	}
}

func TestForestDeterministicForSeed(t *testing.T) {
	cfg := DefaultForestConfig()
	cfg.Trees = 10
	a := trainLinear(t, cfg)
	b := trainLinear(t, cfg)

	x := []float64{17.5, 8.25}
	if pa, pb := a.Predict(x), b.Predict(x); pa != pb {
		t.Fatalf("identically seeded forests disagree: %f vs %f", pa, pb)
	}
}

func TestForestFitErrors(t *testing.T) {
	f := NewForest(DefaultForestConfig())
	if err := f.Fit(nil, nil); err != ErrEmptyTrainingSet {
		t.Errorf("empty fit: expected ErrEmptyTrainingSet, got %v", err)
	}
	if err := f.Fit([][]float64{{1}}, []float64{1, 2}); err != ErrShapeMismatch {
		t.Errorf("mismatched fit: expected ErrShapeMismatch, got %v", err)
	}
}

func TestForestConstantLabels(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}, {4}, {5}, {6}}
	labels := []float64{7, 7, 7, 7, 7, 7}
	cfg := DefaultForestConfig()
	cfg.Trees = 5
	f := NewForest(cfg)
	if err := f.Fit(features, labels); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if got := f.Predict([]float64{3.5}); math.Abs(got-7) > 1e-9 {
		t.Errorf("constant-label forest predicted %f, want 7", got)
	}
}
