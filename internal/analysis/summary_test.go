package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sjlee/krx-insight/internal/contracts"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int64) *int64     { return &v }

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)

	assert.Equal(t, 0, got.TotalCount)
	assert.Empty(t, got.MarketCounts)
	assert.Zero(t, got.MeanVolume)
}

func TestSummarize(t *testing.T) {
	records := []contracts.TickerMetric{
		{Code: "005930", Name: "삼성전자", Market: "KOSPI", Volume: 1000,
			ChangePct: fptr(2.5), ForeignNet: iptr(500), InstNet: iptr(-200)},
		{Code: "000660", Name: "SK하이닉스", Market: "KOSPI", Volume: 3000,
			ChangePct: fptr(-1.5), ForeignNet: iptr(-100), InstNet: iptr(300)},
		{Code: "035720", Name: "카카오", Market: "KOSDAQ", Volume: 2000,
			ChangePct: fptr(0), ForeignNet: iptr(0)},
		{Code: "068270", Name: "셀트리온", Market: "KOSPI", Volume: 600}, // 등락률/수급 결측
	}

	got := Summarize(records)

	assert.Equal(t, 4, got.TotalCount)
	assert.Equal(t, map[string]int{"KOSPI": 3, "KOSDAQ": 1}, got.MarketCounts)

	// 등락률 통계는 값이 있는 3종목만
	assert.Equal(t, 1, got.Advancing)
	assert.Equal(t, 1, got.Declining)
	assert.Equal(t, 1, got.Flat)
	assert.InDelta(t, 0.33, got.MeanPct, 1e-9) // (2.5-1.5+0)/3 = 0.3333 → 0.33

	assert.InDelta(t, 1650.0, got.MeanVolume, 1e-9)
	assert.Equal(t, "000660", got.TopVolumeCode)
	assert.Equal(t, "SK하이닉스", got.TopVolumeName)

	// 순매수량 0은 매수/매도 어느 쪽에도 세지 않는다
	assert.Equal(t, 1, got.ForeignBuyers)
	assert.Equal(t, 1, got.ForeignSellers)
	assert.Equal(t, 1, got.InstBuyers)
	assert.Equal(t, 1, got.InstSellers)
}
