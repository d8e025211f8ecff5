// Package scoring turns an answer set into a risk score and investor profile.
// Everything here is pure and deterministic.
package scoring

import (
	"math"

	"moneybrief/internal/model"
)

// PointTable holds the points every scored answer contributes.
// Questions missing from the table do not affect the score.
var PointTable = map[string]map[string]int{
	"age": {
		"under25": 10,
		"25-34":   8,
		"35-44":   6,
		"45-54":   4,
		"55+":     2,
	},
	"investmentGoal": {
		"preservation": 1,
		"income":       3,
		"balanced":     6,
		"aggressive":   10,
	},
	"knowledge": {
		"none":         1,
		"basic":        3,
		"intermediate": 6,
		"advanced":     10,
	},
	"riskTolerance": {
		"sell": 1,
		"wait": 5,
		"buy":  10,
	},
	"timeHorizon": {
		"less1": 1,
		"1-3":   3,
		"3-5":   6,
		"more5": 10,
	},
	"investmentPortion": {
		"less10": 2,
		"10-25":  4,
		"25-50":  7,
		"more50": 10,
	},
}

// Profile thresholds: a score below the bound maps to the profile
var thresholds = []struct {
	below   int
	profile model.Profile
}{
	{20, model.ProfileConservative},
	{40, model.ProfileModeratelyConservative},
	{60, model.ProfileModerate},
	{80, model.ProfileModeratelyAggressive},
}

// Result is the outcome of scoring an answer set
type Result struct {
	Points    int           `json:"points"`
	MaxPoints int           `json:"maxPoints"`
	RiskScore int           `json:"riskScore"`
	Profile   model.Profile `json:"profile"`
}

// MaxPoints is the highest possible sum over the point table
func MaxPoints() int {
	total := 0
	for _, values := range PointTable {
		best := 0
		for _, p := range values {
			if p > best {
				best = p
			}
		}
		total += best
	}
	return total
}

// Points sums the table points of the given answers
func Points(answers model.Answers) int {
	total := 0
	for questionID, values := range PointTable {
		total += values[answers[questionID]]
	}
	return total
}

// RiskScore normalizes the answer points to an integer in 0..100
func RiskScore(answers model.Answers) int {
	return normalize(Points(answers), MaxPoints())
}

// Classify maps a risk score to its profile bucket
func Classify(score int) model.Profile {
	for _, t := range thresholds {
		if score < t.below {
			return t.profile
		}
	}
	return model.ProfileAggressive
}

// Evaluate scores answers and classifies the result
func Evaluate(answers model.Answers) Result {
	points := Points(answers)
	maxPoints := MaxPoints()
	score := normalize(points, maxPoints)
	return Result{
		Points:    points,
		MaxPoints: maxPoints,
		RiskScore: score,
		Profile:   Classify(score),
	}
}

func normalize(points, maxPoints int) int {
	if maxPoints <= 0 {
		return 0
	}
	score := int(math.Round(float64(points) / float64(maxPoints) * 100))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
