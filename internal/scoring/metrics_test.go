package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjlee/krx-insight/internal/contracts"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int64) *int64     { return &v }

func TestPERFairColumn(t *testing.T) {
	records := []contracts.TickerMetric{
		{Code: "A", PER: fptr(15)},
		{Code: "B", PER: fptr(35)},
		{Code: "C", PER: fptr(5)},
		{Code: "D", PER: fptr(-10)},
		{Code: "E"}, // PER 결측
		{Code: "F", PER: fptr(50)},
	}

	got := perFairColumn(records)

	// PER 15 적정 구간 중심 100점, 1 벗어날 때마다 5점 감소, 0 이하/결측 0점
	assert.Equal(t, []float64{100, 0, 50, 0, 0, 0}, got)
}

func TestPERFairColumn_AbsentColumn(t *testing.T) {
	records := []contracts.TickerMetric{{Code: "A"}, {Code: "B"}}

	assert.Equal(t, []float64{50, 50}, perFairColumn(records))
}

func TestBuildScoreTable_AbsentColumnsDegradeToNeutral(t *testing.T) {
	// 거래량 외에는 아무 지표도 없는 스냅샷
	records := []contracts.TickerMetric{
		{Code: "A", Volume: 100},
		{Code: "B", Volume: 300},
	}

	table := buildScoreTable(records)

	for _, metric := range []Metric{
		MetricDividendYield, MetricMarketCapRank, MetricVolatilityLow,
		MetricVolatilityHigh, MetricPBRLow, MetricInstNetBuy,
		MetricForeignNetBuy, MetricPERFair, MetricChangeAbs,
	} {
		col, ok := table.column(metric)
		require.True(t, ok, "metric %s missing", metric)
		assert.Equal(t, []float64{50, 50}, col, "metric %s", metric)
	}

	// 거래량은 항상 존재하므로 정상 정규화
	volume, ok := table.column(MetricVolumeRank)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 100}, volume)
}

func TestBuildScoreTable_DirectionFlags(t *testing.T) {
	records := []contracts.TickerMetric{
		{Code: "A", Volume: 1, PBR: fptr(0.5), High52W: fptr(110), Low52W: fptr(100)},
		{Code: "B", Volume: 1, PBR: fptr(2.0), High52W: fptr(200), Low52W: fptr(100)},
	}

	table := buildScoreTable(records)

	// PBR은 낮을수록 좋다
	pbr, _ := table.column(MetricPBRLow)
	assert.Equal(t, []float64{100, 0}, pbr)

	// 52주 변동폭은 역순위/순위 두 방향을 모두 만든다
	low, _ := table.column(MetricVolatilityLow)
	high, _ := table.column(MetricVolatilityHigh)
	assert.Equal(t, []float64{100, 0}, low)
	assert.Equal(t, []float64{0, 100}, high)
}

func TestBuildScoreTable_RowMissingCoercesToZero(t *testing.T) {
	// 컬럼은 존재하되 일부 행만 결측이면 0으로 치환 후 정규화
	records := []contracts.TickerMetric{
		{Code: "A", Volume: 1, DividendYield: fptr(4)},
		{Code: "B", Volume: 1}, // 결측 → 0
		{Code: "C", Volume: 1, DividendYield: fptr(2)},
	}

	table := buildScoreTable(records)

	dividend, _ := table.column(MetricDividendYield)
	assert.Equal(t, []float64{100, 0, 50}, dividend)
}

func TestBuildScoreTable_ChangeAbsUsesMagnitude(t *testing.T) {
	records := []contracts.TickerMetric{
		{Code: "A", Volume: 1, ChangePct: fptr(-8)},
		{Code: "B", Volume: 1, ChangePct: fptr(2)},
		{Code: "C", Volume: 1, ChangePct: fptr(4)},
	}

	table := buildScoreTable(records)

	// |-8| = 8이 최대, |2|가 최소
	change, _ := table.column(MetricChangeAbs)
	assert.InDeltaSlice(t, []float64{100, 0, 100.0 / 3}, change, 1e-9)
}

func TestBand52WPct(t *testing.T) {
	m := contracts.TickerMetric{High52W: fptr(150), Low52W: fptr(100)}
	band, ok := m.Band52WPct()
	require.True(t, ok)
	assert.InDelta(t, 50.0, band, 1e-9)

	// 한쪽이라도 없으면 정의되지 않음
	highOnly := contracts.TickerMetric{High52W: fptr(150)}
	_, ok = highOnly.Band52WPct()
	assert.False(t, ok)

	// 저가 0 이하도 정의되지 않음 (0으로 나누기 방지)
	zeroLow := contracts.TickerMetric{High52W: fptr(150), Low52W: fptr(0)}
	_, ok = zeroLow.Band52WPct()
	assert.False(t, ok)
}
