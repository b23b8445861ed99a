package survey

import (
	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/pkg/logger"
)

// Classifier maps questionnaire answers to an investor risk category.
// ⭐ SSOT: 투자 성향 분류는 여기서만
type Classifier struct {
	logger *logger.Logger
}

// NewClassifier creates a new classifier.
func NewClassifier(log *logger.Logger) *Classifier {
	return &Classifier{
		logger: log,
	}
}

// Classify sums the selected option scores over the 11 fixed questions and
// buckets the score ratio into one of five categories.
//
// answers maps question id to the 0-based index of the selected option.
// 미응답 문항은 0번(최저 위험) 선택으로 간주하고, 범위를 벗어난 인덱스는
// 0점 처리한다. 어떤 입력이든 유효한 프로필을 반환한다.
func (c *Classifier) Classify(answers map[string]int) contracts.InvestorProfile {
	totalScore := 0
	maxScore := 0

	for i := range questions {
		q := &questions[i]
		selected := answers[q.ID] // missing key → 0 (lowest-risk option)
		if selected >= 0 && selected < len(q.Options) {
			totalScore += q.Options[selected].Score
		}
		maxScore += q.MaxScore()
	}

	ratio := 0.0
	if maxScore > 0 {
		ratio = float64(totalScore) / float64(maxScore)
	}

	category := categoryForRatio(ratio)

	c.logger.WithFields(map[string]interface{}{
		"total_score": totalScore,
		"max_score":   maxScore,
		"ratio":       ratio,
		"category":    category.String(),
	}).Info("Classified investor profile")

	return contracts.InvestorProfile{
		Category:   category,
		TotalScore: totalScore,
		MaxScore:   maxScore,
		Ratio:      ratio,
	}
}

// categoryForRatio buckets a score ratio into the five categories.
// 경계값은 상한 포함 (ratio 0.25는 안정형).
func categoryForRatio(ratio float64) contracts.RiskCategory {
	switch {
	case ratio <= 0.25:
		return contracts.Stable
	case ratio <= 0.40:
		return contracts.StableSeeking
	case ratio <= 0.60:
		return contracts.Neutral
	case ratio <= 0.80:
		return contracts.Aggressive
	default:
		return contracts.Offensive
	}
}
