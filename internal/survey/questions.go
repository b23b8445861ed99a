package survey

// Option is one selectable answer with its risk score.
type Option struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is one item of the investor risk questionnaire.
// 문항과 배점은 컴파일 타임에 고정된다 (11문항).
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// 한양증권 투자성향진단 기준 11문항.
// 문항별 선택지 수와 배점 범위는 균일하지 않다.
var questions = []Question{
	{
		ID:     "q1",
		Prompt: "고객님의 연령대는 어떻게 되십니까?",
		Options: []Option{
			{"만 19세 이하", 1},
			{"만 20세~30세", 5},
			{"만 31세~54세", 4},
			{"만 55세~64세", 3},
			{"만 65세 이상", 1},
		},
	},
	{
		ID:     "q2",
		Prompt: "투자하실 자금의 투자가능 기간은 어느 정도입니까?",
		Options: []Option{
			{"6개월 미만", 1},
			{"6개월 이상~1년 미만", 2},
			{"1년 이상~2년 미만", 3},
			{"2년 이상~3년 미만", 4},
			{"3년 이상", 5},
		},
	},
	{
		ID:     "q3",
		Prompt: "다음 중 투자경험과 가장 가까운 상품은 무엇입니까?",
		Options: []Option{
			{"은행 예/적금, 국채, MMF, CMA 등", 1},
			{"금융채, 회사채, 채권형 펀드 등", 2},
			{"혼합형 펀드, 원금 일부 보장 ELS 등", 3},
			{"주식, 원금 비보장 ELS, 주식형 펀드 등", 4},
			{"ELW, 선물옵션, 파생상품 펀드, 신용거래 등", 5},
		},
	},
	{
		ID:     "q4",
		Prompt: "금융투자상품 투자경험 기간은 어떻게 되십니까?",
		Options: []Option{
			{"전혀 없음", 1},
			{"1년 미만", 2},
			{"1년 이상~3년 미만", 3},
			{"3년 이상~5년 미만", 4},
			{"5년 이상", 5},
		},
	},
	{
		ID:     "q5",
		Prompt: "금융투자상품 취득 및 목적은 어떤 것입니까?",
		Options: []Option{
			{"채무상환", 1},
			{"생활비", 2},
			{"주택마련", 3},
			{"여유자금", 4},
			{"자산증식", 5},
		},
	},
	{
		ID:     "q6",
		Prompt: "금융투자상품 투자에 대한 지식수준은 어느 정도입니까?",
		Options: []Option{
			{"금융상품에 투자해 본 경험이 없음", 1},
			{"주식, 채권, 펀드 등의 구조 및 위험을 일정 부분 이해", 3},
			{"주식, 채권, 펀드 등의 구조 및 위험을 깊이 있게 이해", 4},
			{"파생상품 포함 대부분의 금융투자상품 이해", 5},
		},
	},
	{
		ID:     "q7",
		Prompt: "투자수익·투자위험에 대한 태도는 어떻습니까?",
		Options: []Option{
			{"투자수익을 고려하나 원금보존 추구", 1},
			{"원금 보존을 고려하나 투자수익 추구 또는 손실위험 감수", 5},
		},
	},
	{
		ID:     "q8",
		Prompt: "고객님의 총 자산은 어떻습니까?",
		Options: []Option{
			{"1억 미만", 1},
			{"1억 이상~2억 미만", 2},
			{"2억 이상~5억 미만", 3},
			{"5억 이상~10억 미만", 4},
			{"10억 이상", 5},
		},
	},
	{
		ID:     "q9",
		Prompt: "향후 수입원에 대한 예상은 어떻게 하고 계십니까?",
		Options: []Option{
			{"일정 수입 + 유지 또는 증가 예상", 5},
			{"일정 수입 있으나 감소/불안정 예상", 3},
			{"일정 수입 없으며 연금이 주 수입원", 1},
		},
	},
	{
		ID:     "q10",
		Prompt: "기대이익 수준은 어떻게 되십니까?",
		Options: []Option{
			{"원금 기준 10% 범위", 1},
			{"원금 기준 20% 범위", 2},
			{"원금 기준 50% 범위", 3},
			{"원금 기준 70% 범위", 4},
			{"원금 기준 100% 범위", 5},
		},
	},
	{
		ID:     "q11",
		Prompt: "감내할 수 있는 손실 수준은 어느 정도입니까?",
		Options: []Option{
			{"원금보존추구", 1},
			{"원금 기준 -10% 범위", 2},
			{"원금 기준 -20% 범위", 3},
			{"원금 기준 -50% 범위", 4},
			{"원금 기준 -70% 범위", 5},
			{"전액손실감내가능", 6},
		},
	},
}

// Questions returns the fixed questionnaire in presentation order.
func Questions() []Question {
	return questions
}

// MaxScore returns the highest score among the question's options.
func (q *Question) MaxScore() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Score > max {
			max = opt.Score
		}
	}
	return max
}
