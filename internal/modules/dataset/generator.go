// README: Synthetic trip generator; the ground-truth cost model the regressors approximate.
package dataset

import "math/rand"

// DefaultSamples is the dataset size used when the caller does not
// override it.
const DefaultSamples = 1000

const minETAMinutes = 5.0

// Generator produces labeled TripSamples from the category cost model
// plus contextual additive terms and uniform noise.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Samples generates n labeled trips. Distances are clamped to the
// category maximum before costs are derived, fares are floored at the
// category base fare, and ETAs are floored at five minutes.
func (g *Generator) Samples(n int) []TripSample {
	out := make([]TripSample, 0, n)
	cats := Categories()
	for i := 0; i < n; i++ {
		distance := 1 + g.rng.Float64()*49 // uniform [1, 50)
		hour := g.rng.Intn(24)
		day := g.rng.Intn(7)
		rainy := g.rng.Intn(2) == 1
		category := cats[g.rng.Intn(len(cats))]

		profile, _ := ProfileFor(category)
		if distance > profile.MaxDistanceKm {
			distance = profile.MaxDistanceKm
		}

		fare := distance*profile.CostPerKm + profile.BaseFare
		eta := distance * 2 * profile.ETAMultiplier

		rain := 0.0
		if rainy {
			rain = 1.0
		}
		fare += float64(hour)*3 + float64(day)*5 + rain*70
		eta += float64(hour)*0.5 + float64(day)*1 + rain*10

		fare += g.uniform(-25, 25)
		if fare < profile.BaseFare {
			fare = profile.BaseFare
		}
		eta += g.uniform(-5, 5)
		if eta < minETAMinutes {
			eta = minETAMinutes
		}

		out = append(out, TripSample{
			DistanceKm: distance,
			Hour:       hour,
			DayOfWeek:  day,
			IsRainy:    rainy,
			Category:   category,
			Fare:       fare,
			ETAMinutes: eta,
		})
	}
	return out
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
