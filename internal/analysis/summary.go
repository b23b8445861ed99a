package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sjlee/krx-insight/internal/contracts"
)

// Summarize computes aggregate statistics over one snapshot.
// 순수 함수이며 빈 스냅샷이면 카운트가 0인 요약을 돌려준다.
func Summarize(records []contracts.TickerMetric) contracts.MarketSummary {
	summary := contracts.MarketSummary{
		TotalCount:   len(records),
		MarketCounts: make(map[string]int),
	}
	if len(records) == 0 {
		return summary
	}

	// 등락률 통계는 값이 있는 종목만 집계한다.
	changes := make([]float64, 0, len(records))
	volumes := make([]float64, len(records))
	topVolume := int64(-1)

	for i := range records {
		record := &records[i]

		if record.Market != "" {
			summary.MarketCounts[record.Market]++
		}

		if record.ChangePct != nil {
			pct := *record.ChangePct
			changes = append(changes, pct)
			switch {
			case pct > 0:
				summary.Advancing++
			case pct < 0:
				summary.Declining++
			default:
				summary.Flat++
			}
		}

		volumes[i] = float64(record.Volume)
		if record.Volume > topVolume {
			topVolume = record.Volume
			summary.TopVolumeCode = record.Code
			summary.TopVolumeName = record.Name
		}

		if record.ForeignNet != nil {
			if *record.ForeignNet > 0 {
				summary.ForeignBuyers++
			} else if *record.ForeignNet < 0 {
				summary.ForeignSellers++
			}
		}
		if record.InstNet != nil {
			if *record.InstNet > 0 {
				summary.InstBuyers++
			} else if *record.InstNet < 0 {
				summary.InstSellers++
			}
		}
	}

	if len(changes) > 0 {
		summary.MeanPct = round2(stat.Mean(changes, nil))
	}
	summary.MeanVolume = round2(stat.Mean(volumes, nil))

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
