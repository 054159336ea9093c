package matching

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.NoError(t, w.Validate())
	assert.InDelta(t, 1.0, w.Sum(), 0.001)
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"defaults", DefaultWeights(), false},
		{"custom summing to one", Weights{Semantic: 0.25, Skills: 0.25, Experience: 0.25, Education: 0.25}, false},
		{"within tolerance", Weights{Semantic: 0.35, Skills: 0.40, Experience: 0.15, Education: 0.105}, false},
		{"sum too low", Weights{Semantic: 0.5, Skills: 0.3, Experience: 0.1, Education: 0.05}, true},
		{"sum too high", Weights{Semantic: 0.5, Skills: 0.5, Experience: 0.5, Education: 0.5}, true},
		{"all zero", Weights{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				var weightErr *WeightError
				require.Error(t, err)
				assert.True(t, errors.As(err, &weightErr))
				assert.InDelta(t, tt.weights.Sum(), weightErr.Sum, 0.001)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeightsFromMap(t *testing.T) {
	w, err := WeightsFromMap(map[string]float64{
		"semantic":   0.3,
		"skills":     0.3,
		"experience": 0.2,
		"education":  0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, Weights{Semantic: 0.3, Skills: 0.3, Experience: 0.2, Education: 0.2}, w)
}

func TestWeightsFromMap_MissingKey(t *testing.T) {
	_, err := WeightsFromMap(map[string]float64{
		"semantic": 0.5,
		"skills":   0.5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "experience")
}
