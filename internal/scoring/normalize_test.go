package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumn(t *testing.T) {
	t.Run("ascending rescale", func(t *testing.T) {
		got := normalizeColumn([]float64{10, 20, 30}, false)

		assert.Equal(t, []float64{0, 50, 100}, got)
	})

	t.Run("descending inverts direction", func(t *testing.T) {
		got := normalizeColumn([]float64{10, 20, 30}, true)

		assert.Equal(t, []float64{100, 50, 0}, got)
	})

	t.Run("flat distribution pins to neutral", func(t *testing.T) {
		// min==max면 0/100 양극화 대신 전 종목 50
		got := normalizeColumn([]float64{7, 7, 7, 7}, false)

		assert.Equal(t, []float64{50, 50, 50, 50}, got)
	})

	t.Run("single value is neutral", func(t *testing.T) {
		assert.Equal(t, []float64{50}, normalizeColumn([]float64{42}, false))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, normalizeColumn(nil, false))
	})

	t.Run("results stay in range", func(t *testing.T) {
		values := []float64{-500, -1.5, 0, 3.25, 99999}
		for _, descending := range []bool{false, true} {
			for _, v := range normalizeColumn(values, descending) {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 100.0)
			}
		}
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 43.33, round2(43.333333))
	assert.Equal(t, 16.67, round2(16.666666))
	assert.Equal(t, 50.0, round2(50.0))
}
