// README: Qualitative confidence label derived from an ordered penalty rule chain.
package confidence

import "farecast/internal/modules/dataset"

// Level is the qualitative trust label attached to a prediction.
type Level string

const (
	Low    Level = "Low"
	Medium Level = "Medium"
	High   Level = "High"
)

// Input carries the features the rule chain inspects.
type Input struct {
	DistanceKm float64
	Hour       int
	IsRainy    bool
	Category   dataset.Category
}

type rule struct {
	name      string
	applies   func(Input) bool
	deduction int
}

// The chain is evaluated in order, though the rules are independent and
// additive; the floor is applied once at the end.
var rules = []rule{
	{
		name:      "long_distance",
		applies:   func(in Input) bool { return in.DistanceKm > 30 },
		deduction: 1,
	},
	{
		name: "rush_hour",
		applies: func(in Input) bool {
			return (in.Hour >= 7 && in.Hour <= 9) || (in.Hour >= 17 && in.Hour <= 19)
		},
		deduction: 1,
	},
	{
		name:      "rain",
		applies:   func(in Input) bool { return in.IsRainy },
		deduction: 1,
	},
	{
		name: "variable_category",
		applies: func(in Input) bool {
			return in.Category == dataset.Riksha || in.Category == dataset.AutoRiksha
		},
		deduction: 1,
	},
}

// Estimate starts at the High score (3), subtracts one per matching
// rule, floors at 1, and maps 3→High, 2→Medium, otherwise Low.
func Estimate(in Input) Level {
	score := 3
	for _, r := range rules {
		if r.applies(in) {
			score -= r.deduction
		}
	}
	if score < 1 {
		score = 1
	}

	switch score {
	case 3:
		return High
	case 2:
		return Medium
	default:
		return Low
	}
}
