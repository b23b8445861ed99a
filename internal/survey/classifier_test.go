package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/pkg/logger"
)

func TestQuestions_FixedSchema(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 11)

	seen := make(map[string]bool)
	maxTotal := 0
	for _, q := range qs {
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
		assert.NotEmpty(t, q.Prompt)
		assert.GreaterOrEqual(t, len(q.Options), 2)
		maxTotal += q.MaxScore()
	}

	// q11은 6지선다 최대 6점, 나머지는 최대 5점
	assert.Equal(t, 56, maxTotal)
}

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(logger.Nop())

	tests := []struct {
		name         string
		answers      map[string]int
		wantCategory contracts.RiskCategory
		wantTotal    int
	}{
		{
			// q9는 0번 선택지가 5점이라 전부 0번이어도 최저점이 아니다
			name:         "all first options",
			answers:      map[string]int{},
			wantCategory: contracts.StableSeeking,
			wantTotal:    15,
		},
		{
			name: "lowest possible score",
			answers: map[string]int{
				"q9": 2, // 1점 선택지
			},
			wantCategory: contracts.Stable,
			wantTotal:    11,
		},
		{
			// 14/56 = 0.25, 경계는 상한 포함이라 안정형
			name: "exact stable boundary",
			answers: map[string]int{
				"q9":  2,
				"q11": 3,
			},
			wantCategory: contracts.Stable,
			wantTotal:    14,
		},
		{
			// 15/56 > 0.25
			name: "just above stable boundary",
			answers: map[string]int{
				"q9":  2,
				"q11": 4,
			},
			wantCategory: contracts.StableSeeking,
			wantTotal:    15,
		},
		{
			name: "all max options",
			answers: map[string]int{
				"q1": 1, "q2": 4, "q3": 4, "q4": 4, "q5": 4, "q6": 3,
				"q7": 1, "q8": 4, "q9": 0, "q10": 4, "q11": 5,
			},
			wantCategory: contracts.Offensive,
			wantTotal:    56,
		},
		{
			// 범위 밖 인덱스는 해당 문항 0점 (전체 실패 아님)
			name: "out of range index contributes zero",
			answers: map[string]int{
				"q1": 99,
				"q9": 2,
			},
			wantCategory: contracts.Stable,
			wantTotal:    10,
		},
		{
			name: "negative index contributes zero",
			answers: map[string]int{
				"q1": -1,
				"q9": 2,
			},
			wantCategory: contracts.Stable,
			wantTotal:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := classifier.Classify(tt.answers)

			assert.Equal(t, tt.wantCategory, profile.Category)
			assert.Equal(t, tt.wantTotal, profile.TotalScore)
			assert.Equal(t, 56, profile.MaxScore)
			assert.GreaterOrEqual(t, profile.Ratio, 0.0)
			assert.LessOrEqual(t, profile.Ratio, 1.0)
			assert.InDelta(t, float64(tt.wantTotal)/56.0, profile.Ratio, 1e-9)
		})
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	classifier := NewClassifier(logger.Nop())
	answers := map[string]int{"q1": 1, "q3": 4, "q7": 1, "q11": 5}

	first := classifier.Classify(answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.Classify(answers))
	}
}

func TestCategoryForRatio_Boundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  contracts.RiskCategory
	}{
		{0.0, contracts.Stable},
		{0.25, contracts.Stable},
		{0.26, contracts.StableSeeking},
		{0.40, contracts.StableSeeking},
		{0.41, contracts.Neutral},
		{0.60, contracts.Neutral},
		{0.61, contracts.Aggressive},
		{0.80, contracts.Aggressive},
		{0.81, contracts.Offensive},
		{1.0, contracts.Offensive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryForRatio(tt.ratio), "ratio=%v", tt.ratio)
	}
}

func TestDescribe(t *testing.T) {
	for _, cat := range []contracts.RiskCategory{
		contracts.Stable, contracts.StableSeeking, contracts.Neutral,
		contracts.Aggressive, contracts.Offensive,
	} {
		info := Describe(cat)
		assert.NotEmpty(t, info.Title)
		assert.NotEmpty(t, info.Strategy)
	}

	// 정의 밖 값은 위험중립형 설명
	assert.Equal(t, Describe(contracts.Neutral), Describe(contracts.RiskCategory(99)))
}
