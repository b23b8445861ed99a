package scoring

import (
	"sort"

	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/pkg/logger"
)

// Scorer computes per-ticker recommendation scores for a risk category.
// ⭐ SSOT: 성향별 추천 스코어링은 여기서만
type Scorer struct {
	logger *logger.Logger
}

// NewScorer creates a new scorer.
func NewScorer(log *logger.Logger) *Scorer {
	return &Scorer{
		logger: log,
	}
}

// Score normalizes the snapshot, applies the category's weight profile and
// returns recommendations ordered by descending score.
//
// 정규화가 스냅샷 전체 기준이므로 항상 완전한 스냅샷을 넘겨야 종목 간
// 점수를 비교할 수 있다. 입력은 변경하지 않으며, 빈 스냅샷이면 빈 결과를
// 돌려준다. 반올림된 최종 점수가 같으면 동점이며 입력 순서를 유지한다
// (stable sort).
func (s *Scorer) Score(records []contracts.TickerMetric, cat contracts.RiskCategory) []contracts.Recommendation {
	if len(records) == 0 {
		return []contracts.Recommendation{}
	}

	table := buildScoreTable(records)
	profile := ProfileFor(cat)

	// 가중치 적용 총점
	totals := make([]float64, len(records))
	for _, mw := range profile {
		col, ok := table.column(mw.Metric)
		if !ok {
			continue
		}
		for i := range totals {
			totals[i] += col[i] * mw.Weight
		}
	}

	// 최종 점수는 소수 둘째 자리까지이므로 반올림 후에 정렬한다.
	// 반올림 전에 정렬하면 표시 점수가 같은 종목끼리 순서가 뒤집힐 수 있다.
	for i := range totals {
		totals[i] = round2(totals[i])
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})

	topMetrics := profile.topWeighted(3)

	recommendations := make([]contracts.Recommendation, 0, len(records))
	for rank, idx := range order {
		recommendations = append(recommendations, contracts.Recommendation{
			Code:   records[idx].Code,
			Name:   records[idx].Name,
			Rank:   rank + 1,
			Score:  totals[idx],
			Reason: buildReason(topMetrics, table, idx),
		})
	}

	s.logger.WithFields(map[string]interface{}{
		"category":  cat.String(),
		"tickers":   len(recommendations),
		"top_code":  recommendations[0].Code,
		"top_score": recommendations[0].Score,
	}).Info("Scored snapshot")

	return recommendations
}

// TopN scores the snapshot and truncates to the first n rows.
// 랭킹 자체는 Score와 완전히 동일하다.
func (s *Scorer) TopN(records []contracts.TickerMetric, cat contracts.RiskCategory, n int) []contracts.Recommendation {
	recommendations := s.Score(records, cat)
	if n >= 0 && n < len(recommendations) {
		recommendations = recommendations[:n]
	}
	return recommendations
}
