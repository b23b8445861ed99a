package contracts

import (
	"encoding/json"
	"fmt"
)

// RiskCategory is one of the five ordered investor risk categories.
// 한양증권 투자성향진단 기준 5단계 (위험 선호 오름차순).
type RiskCategory int

const (
	Stable        RiskCategory = iota // 안정형
	StableSeeking                     // 안정추구형
	Neutral                           // 위험중립형
	Aggressive                        // 적극투자형
	Offensive                         // 공격투자형
)

var categoryNames = map[RiskCategory]string{
	Stable:        "안정형",
	StableSeeking: "안정추구형",
	Neutral:       "위험중립형",
	Aggressive:    "적극투자형",
	Offensive:     "공격투자형",
}

var categorySlugs = map[RiskCategory]string{
	Stable:        "stable",
	StableSeeking: "stable-seeking",
	Neutral:       "neutral",
	Aggressive:    "aggressive",
	Offensive:     "offensive",
}

// String returns the Korean display name of the category.
func (c RiskCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "위험중립형"
}

// Slug returns the ASCII identifier of the category (CLI/API 용).
func (c RiskCategory) Slug() string {
	if slug, ok := categorySlugs[c]; ok {
		return slug
	}
	return "neutral"
}

// IsValid reports whether the value is one of the five defined categories.
func (c RiskCategory) IsValid() bool {
	return c >= Stable && c <= Offensive
}

// ParseRiskCategory resolves a Korean name or ASCII slug to a category.
func ParseRiskCategory(s string) (RiskCategory, error) {
	for cat, name := range categoryNames {
		if s == name {
			return cat, nil
		}
	}
	for cat, slug := range categorySlugs {
		if s == slug {
			return cat, nil
		}
	}
	return Neutral, fmt.Errorf("unknown risk category: %q", s)
}

// MarshalJSON encodes the category as its ASCII slug.
func (c RiskCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Slug())
}

// UnmarshalJSON accepts either the ASCII slug or the Korean name.
func (c *RiskCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	cat, err := ParseRiskCategory(s)
	if err != nil {
		return err
	}
	*c = cat
	return nil
}

// InvestorProfile is the result of classifying a survey response.
// 분류 호출마다 새로 생성되며 변경되지 않는다.
type InvestorProfile struct {
	Category   RiskCategory `json:"category"`
	TotalScore int          `json:"total_score"`
	MaxScore   int          `json:"max_score"`
	Ratio      float64      `json:"ratio"` // TotalScore / MaxScore, 항상 [0,1]
}
