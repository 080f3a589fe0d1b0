package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}

	t.Run("endpoints are the min and max", func(t *testing.T) {
		p0, err := Percentile(values, 0)
		require.NoError(t, err)
		require.Equal(t, 1.0, p0)

		p100, err := Percentile(values, 100)
		require.NoError(t, err)
		require.Equal(t, 5.0, p100)
	})

	t.Run("monotone in p", func(t *testing.T) {
		previous := 0.0
		for _, p := range []float64{1, 5, 25, 50, 75, 95, 99} {
			value, err := Percentile(values, p)
			require.NoError(t, err)
			require.GreaterOrEqual(t, value, previous)
			previous = value
		}
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		input := []float64{3, 1, 2}
		_, err := Percentile(input, 50)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 1, 2}, input)
	})

	t.Run("rejects empty series", func(t *testing.T) {
		_, err := Percentile(nil, 50)
		require.Error(t, err)
	})

	t.Run("rejects out of range p", func(t *testing.T) {
		_, err := Percentile(values, 101)
		require.Error(t, err)
	})
}
