package scoring

import "strings"

// 정규화 점수가 이 값 이상인 지표만 추천 이유에 오른다.
const reasonThreshold = 70.0

// fallbackReason is used when no metric clears the threshold.
const fallbackReason = "종합 분석 추천"

// reasonLabels maps metrics to the short labels shown to users.
var reasonLabels = map[Metric]string{
	MetricDividendYield:  "높은 배당수익률",
	MetricMarketCapRank:  "대형 우량주",
	MetricVolatilityLow:  "낮은 변동성",
	MetricVolatilityHigh: "높은 변동성(기회)",
	MetricPBRLow:         "저평가(PBR)",
	MetricInstNetBuy:     "기관 순매수 양호",
	MetricForeignNetBuy:  "외국인 순매수 양호",
	MetricPERFair:        "적정 PER",
	MetricVolumeRank:     "높은 거래량",
	MetricChangeAbs:      "높은 등락률",
}

// buildReason explains one ticker's score: the profile's highest-weighted
// metrics (호출자가 topWeighted로 한 번만 뽑아 전달) are checked against the
// ticker's own normalized scores, and those at or above reasonThreshold are
// joined with " + ".
func buildReason(topMetrics WeightProfile, table *scoreTable, idx int) string {
	parts := make([]string, 0, 3)

	for _, mw := range topMetrics {
		col, ok := table.column(mw.Metric)
		if !ok {
			continue
		}
		if col[idx] >= reasonThreshold {
			label, ok := reasonLabels[mw.Metric]
			if !ok {
				label = string(mw.Metric)
			}
			parts = append(parts, label)
		}
	}

	if len(parts) == 0 {
		return fallbackReason
	}
	return strings.Join(parts, " + ")
}
