package dataset

import (
	"math/rand"
	"testing"
)

func TestGeneratorSamplesRespectProfileBounds(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))
	samples := g.Samples(2000)
	if len(samples) != 2000 {
		t.Fatalf("expected 2000 samples, got %d", len(samples))
	}

	for i, s := range samples {
		profile, ok := ProfileFor(s.Category)
		if !ok {
			t.Fatalf("sample %d has unknown category %d", i, s.Category)
		}
		if s.DistanceKm < 0 || s.DistanceKm > profile.MaxDistanceKm {
			t.Fatalf("sample %d distance %.2f outside [0, %.0f]", i, s.DistanceKm, profile.MaxDistanceKm)
		}
		if s.Fare < profile.BaseFare {
			t.Fatalf("sample %d fare %.2f below base fare %.0f", i, s.Fare, profile.BaseFare)
		}
		if s.ETAMinutes < 5 {
			t.Fatalf("sample %d eta %.2f below 5 minute floor", i, s.ETAMinutes)
		}
		if s.Hour < 0 || s.Hour > 23 {
			t.Fatalf("sample %d hour %d out of range", i, s.Hour)
		}
		if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
			t.Fatalf("sample %d day %d out of range", i, s.DayOfWeek)
		}
	}
}

func TestGeneratorDeterministicForSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42))).Samples(100)
	b := NewGenerator(rand.New(rand.NewSource(42))).Samples(100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identically seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratorCoversAllCategories(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))
	seen := map[Category]bool{}
	for _, s := range g.Samples(500) {
		seen[s.Category] = true
	}
	for _, c := range Categories() {
		if !seen[c] {
			t.Errorf("category %s never generated in 500 samples", c)
		}
	}
}

func TestProfileTable(t *testing.T) {
	tests := []struct {
		category Category
		want     Profile
	}{
		{Economy, Profile{BaseFare: 50, CostPerKm: 25, ETAMultiplier: 1.0, MaxDistanceKm: 30}},
		{Premium, Profile{BaseFare: 100, CostPerKm: 40, ETAMultiplier: 0.8, MaxDistanceKm: 50}},
		{Motorbike, Profile{BaseFare: 30, CostPerKm: 15, ETAMultiplier: 0.7, MaxDistanceKm: 40}},
		{Riksha, Profile{BaseFare: 20, CostPerKm: 10, ETAMultiplier: 1.5, MaxDistanceKm: 10}},
		{AutoRiksha, Profile{BaseFare: 35, CostPerKm: 18, ETAMultiplier: 1.2, MaxDistanceKm: 20}},
	}
	for _, tt := range tests {
		got, ok := ProfileFor(tt.category)
		if !ok {
			t.Fatalf("ProfileFor(%s) missing", tt.category)
		}
		if got != tt.want {
			t.Errorf("ProfileFor(%s) = %+v, want %+v", tt.category, got, tt.want)
		}
	}

	if _, ok := ProfileFor(Category(99)); ok {
		t.Error("ProfileFor should reject values outside the enum")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"economy", Economy, false},
		{"Premium", Premium, false},
		{" motorbike ", Motorbike, false},
		{"riksha", Riksha, false},
		{"auto_riksha", AutoRiksha, false},
		{"autoriksha", AutoRiksha, false},
		{"rocket", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFeatureVectorOrdering(t *testing.T) {
	got := FeatureVector(12.5, 18, 4, true, AutoRiksha)
	want := []float64{12.5, 18, 4, 1, 4}
	if len(got) != len(want) {
		t.Fatalf("feature vector length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("feature %d = %f, want %f", i, got[i], want[i])
		}
	}
}
