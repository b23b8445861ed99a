package scoring

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// neutralScore is the fallback for columns that carry no information
// (전 종목 동일값이거나 스냅샷에 해당 지표가 아예 없는 경우).
const neutralScore = 50.0

// normalizeColumn rescales raw values to [0,100] relative to the corpus.
// min==max인 평평한 분포는 전 종목 neutralScore로 고정해 0/100 양극화와
// 0으로 나누기를 동시에 피한다. descending이면 방향을 뒤집는다
// (값이 낮을수록 좋은 지표용).
func normalizeColumn(values []float64, descending bool) []float64 {
	if len(values) == 0 {
		return nil
	}

	minV := floats.Min(values)
	maxV := floats.Max(values)
	if minV == maxV {
		return neutralColumn(len(values))
	}

	normalized := make([]float64, len(values))
	for i, v := range values {
		score := (v - minV) / (maxV - minV) * 100
		if descending {
			score = 100 - score
		}
		normalized[i] = score
	}
	return normalized
}

// neutralColumn returns a constant neutralScore column of length n.
func neutralColumn(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = neutralScore
	}
	return col
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
