package matching

import (
	"fmt"
	"math"
)

// weightTolerance is how far the weight sum may drift from 1.0.
const weightTolerance = 0.01

// Weights holds the contribution of each matching dimension to the total
// score. All four dimensions are required and must sum to 1.0 within
// tolerance.
type Weights struct {
	Semantic   float64 `json:"semantic"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// DefaultWeights returns the default dimension weights.
func DefaultWeights() Weights {
	return Weights{
		Semantic:   0.35,
		Skills:     0.40,
		Experience: 0.15,
		Education:  0.10,
	}
}

// WeightError indicates a weight configuration that does not sum to 1.0.
type WeightError struct {
	Sum float64
}

func (e *WeightError) Error() string {
	return fmt.Sprintf("matching weights must sum to 1.0, got %.4f", e.Sum)
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() float64 {
	return w.Semantic + w.Skills + w.Experience + w.Education
}

// Validate checks that the weights sum to 1.0 within tolerance.
func (w Weights) Validate() error {
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return &WeightError{Sum: sum}
	}
	return nil
}

// WeightsFromMap builds Weights from a map keyed by dimension name. All four
// keys (semantic, skills, experience, education) must be present.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	var w Weights
	for _, key := range []string{"semantic", "skills", "experience", "education"} {
		value, ok := m[key]
		if !ok {
			return Weights{}, fmt.Errorf("missing weight for dimension %q", key)
		}
		switch key {
		case "semantic":
			w.Semantic = value
		case "skills":
			w.Skills = value
		case "experience":
			w.Experience = value
		case "education":
			w.Education = value
		}
	}
	return w, nil
}
