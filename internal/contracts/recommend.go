package contracts

// Recommendation is a per-ticker recommendation score for one risk category.
// ⭐ SSOT: 스코어링 결과 전달 형식
type Recommendation struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Rank   int     `json:"rank"`   // 1-based ranking
	Score  float64 `json:"score"`  // weighted composite, 2 decimals
	Reason string  `json:"reason"` // human-readable justification
}

// IsTopRanked checks if the recommendation is in the top N ranks.
func (r *Recommendation) IsTopRanked(n int) bool {
	return r.Rank <= n && r.Rank > 0
}
