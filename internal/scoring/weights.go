package scoring

import "github.com/sjlee/krx-insight/internal/contracts"

// MetricWeight pairs a metric with its relative importance.
type MetricWeight struct {
	Metric Metric  `json:"metric"`
	Weight float64 `json:"weight"`
}

// WeightProfile is the ordered weight table for one risk category.
// 순서가 곧 추천 이유의 우선순위이므로 가중치 내림차순으로 정의한다.
type WeightProfile []MetricWeight

// Validate checks if weights sum to 1.0 (allowing small floating point error).
func (p WeightProfile) Validate() bool {
	sum := 0.0
	for _, mw := range p {
		sum += mw.Weight
	}
	return sum >= 0.99 && sum <= 1.01
}

// topWeighted returns the n highest-weighted entries, ties keeping
// their defined order.
func (p WeightProfile) topWeighted(n int) WeightProfile {
	sorted := make(WeightProfile, len(p))
	copy(sorted, p)
	// 정의 순서가 이미 내림차순이지만 구성 실수에 대비해 안정 정렬을 한 번 더 건다.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Weight < sorted[j].Weight; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// 성향별 가중치 프로필 (5단계 고정).
var weightProfiles = map[contracts.RiskCategory]WeightProfile{
	contracts.Stable: {
		{MetricDividendYield, 0.30},
		{MetricMarketCapRank, 0.25},
		{MetricVolatilityLow, 0.25},
		{MetricPBRLow, 0.10},
		{MetricInstNetBuy, 0.10},
	},
	contracts.StableSeeking: {
		{MetricDividendYield, 0.20},
		{MetricMarketCapRank, 0.20},
		{MetricInstNetBuy, 0.20},
		{MetricPERFair, 0.20},
		{MetricVolatilityLow, 0.20},
	},
	contracts.Neutral: {
		{MetricForeignNetBuy, 0.25},
		{MetricPERFair, 0.20},
		{MetricVolumeRank, 0.20},
		{MetricChangeAbs, 0.20},
		{MetricMarketCapRank, 0.15},
	},
	contracts.Aggressive: {
		{MetricVolumeRank, 0.30},
		{MetricChangeAbs, 0.25},
		{MetricForeignNetBuy, 0.20},
		{MetricVolatilityHigh, 0.15},
		{MetricPERFair, 0.10},
	},
	contracts.Offensive: {
		{MetricVolumeRank, 0.35},
		{MetricChangeAbs, 0.30},
		{MetricVolatilityHigh, 0.20},
		{MetricForeignNetBuy, 0.15},
	},
}

// ProfileFor returns the weight profile for a category.
// 정의되지 않은 성향은 위험중립형 프로필로 대체한다.
func ProfileFor(cat contracts.RiskCategory) WeightProfile {
	if profile, ok := weightProfiles[cat]; ok {
		return profile
	}
	return weightProfiles[contracts.Neutral]
}
