package survey

import "github.com/sjlee/krx-insight/internal/contracts"

// CategoryInfo describes one risk category for presentation layers.
type CategoryInfo struct {
	Emoji    string `json:"emoji"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Strategy string `json:"strategy"`
	Color    string `json:"color"`
}

var categoryInfos = map[contracts.RiskCategory]CategoryInfo{
	contracts.Stable: {
		Emoji: "🛡️",
		Title: "안정형 투자자",
		Desc: "예금 또는 적금 수준의 수익률을 기대하며, " +
			"투자원금에 손실이 발생하는 것을 원하지 않습니다.",
		Strategy: "고배당 대형 우량주, 낮은 변동성 종목 위주 추천",
		Color:    "#2E86AB",
	},
	contracts.StableSeeking: {
		Emoji: "🔒",
		Title: "안정추구형 투자자",
		Desc: "투자 원금의 손실위험은 최소화하고, " +
			"이자소득이나 배당소득 수준의 안정적인 투자를 목표로 합니다. " +
			"예·적금보다 높은 수익을 위해 일부 변동성을 허용합니다.",
		Strategy: "배당+가치주, 기관 순매수 양호 중대형주 추천",
		Color:    "#A23B72",
	},
	contracts.Neutral: {
		Emoji: "⚖️",
		Title: "위험중립형 투자자",
		Desc: "투자에는 그에 상응하는 위험이 있음을 충분히 인식하고 있으며, " +
			"예·적금보다 높은 수익을 기대할 수 있다면 일정 수준의 손실을 감수합니다.",
		Strategy: "성장주, 적정 PER, 외국인 매수 종목 위주 추천",
		Color:    "#F18F01",
	},
	contracts.Aggressive: {
		Emoji: "🚀",
		Title: "적극투자형 투자자",
		Desc: "투자원금의 보전보다는 위험을 감내하더라도 " +
			"높은 수준의 투자수익 실현을 추구합니다.",
		Strategy: "거래량 급등, 모멘텀 종목, 고변동성 추천",
		Color:    "#C73E1D",
	},
	contracts.Offensive: {
		Emoji: "🔥",
		Title: "공격투자형 투자자",
		Desc: "시장 평균 수익률을 훨씬 넘어서는 높은 수준의 투자수익을 추구하며, " +
			"자산 가치의 변동에 따른 손실 위험을 적극 수용합니다.",
		Strategy: "테마주, 최고 거래량, 고등락률 종목 추천",
		Color:    "#D00000",
	},
}

// Describe returns presentation metadata for a category.
// 정의되지 않은 값은 위험중립형 설명으로 대체한다.
func Describe(cat contracts.RiskCategory) CategoryInfo {
	if info, ok := categoryInfos[cat]; ok {
		return info
	}
	return categoryInfos[contracts.Neutral]
}
