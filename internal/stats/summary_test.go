package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbexplorer.org/internal/indicator"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Summary
	}{
		{
			name:   "even count",
			values: []float64{14.5, 14.3, 14.2, 13.5},
			expected: Summary{
				Count: 4, Mean: 14.125, Std: 0.4349329450233297,
				Min: 13.5, Q25: 14.025, Median: 14.25, Q75: 14.35, Max: 14.5,
			},
		},
		{
			name:   "odd count",
			values: []float64{14.4, 14.3, 13.8},
			expected: Summary{
				Count: 3, Mean: 14.166666666666666, Std: 0.3214550253664317,
				Min: 13.8, Q25: 14.05, Median: 14.3, Q75: 14.35, Max: 14.4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.values)
			assert.Equal(t, tt.expected.Count, got.Count)
			assert.InDelta(t, tt.expected.Mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.expected.Std, got.Std, 1e-9)
			assert.InDelta(t, tt.expected.Min, got.Min, 1e-9)
			assert.InDelta(t, tt.expected.Q25, got.Q25, 1e-9)
			assert.InDelta(t, tt.expected.Median, got.Median, 1e-9)
			assert.InDelta(t, tt.expected.Q75, got.Q75, 1e-9)
			assert.InDelta(t, tt.expected.Max, got.Max, 1e-9)
		})
	}
}

func TestDescribeDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Describe(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestDescribeSingleValue(t *testing.T) {
	got := Describe([]float64{7})
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, 7.0, got.Mean)
	assert.True(t, math.IsNaN(got.Std))
	assert.Equal(t, 7.0, got.Q25)
	assert.Equal(t, 7.0, got.Q75)
}

func TestDescribeEmpty(t *testing.T) {
	got := Describe(nil)
	assert.Equal(t, 0, got.Count)
	assert.True(t, math.IsNaN(got.Mean))
	assert.True(t, math.IsNaN(got.Max))
}

func TestQuantileBounds(t *testing.T) {
	_, err := quantile([]float64{1, 2}, 1.5)
	assert.Error(t, err)

	_, err = quantile(nil, 0.5)
	assert.Error(t, err)

	v, err := quantile([]float64{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestDescribeByCountry(t *testing.T) {
	rows := []indicator.Observation{
		{CountryName: "Switzerland", Year: 1990, Value: 12.5},
		{CountryName: "Sweden", Year: 1990, Value: 14.5},
		{CountryName: "Switzerland", Year: 1991, Value: 12.7},
		{CountryName: "Sweden", Year: 1991, Value: 14.3},
	}

	summaries := DescribeByCountry(rows)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Sweden", summaries[0].Country)
	assert.Equal(t, "Switzerland", summaries[1].Country)
	assert.Equal(t, 2, summaries[0].Summary.Count)
	assert.InDelta(t, 14.4, summaries[0].Summary.Mean, 1e-9)
	assert.InDelta(t, 12.6, summaries[1].Summary.Mean, 1e-9)
}
