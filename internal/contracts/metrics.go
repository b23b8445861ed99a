package contracts

// TickerMetric is a single row of a market snapshot for one security.
// 수집 레이어(스크래핑/스토리지, 본 모듈 범위 밖)가 채워서 전달한다.
// Optional 필드는 포인터로 표현하며 nil = 값 없음.
type TickerMetric struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Market string `json:"market"` // KOSPI, KOSDAQ

	Price        int64 `json:"price"`
	Volume       int64 `json:"volume"`
	TradingValue int64 `json:"trading_value"`

	ChangeValue   *float64 `json:"change_value,omitempty"`   // 전일비 (원)
	ChangePct     *float64 `json:"change_pct,omitempty"`     // 등락률 (%)
	MarketCap     *float64 `json:"market_cap,omitempty"`     // 시가총액 (억)
	PER           *float64 `json:"per,omitempty"`
	PBR           *float64 `json:"pbr,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"` // 배당수익률 (%)
	High52W       *float64 `json:"high_52w,omitempty"`
	Low52W        *float64 `json:"low_52w,omitempty"`
	ForeignNet    *int64   `json:"foreign_net,omitempty"`    // 외국인 순매수량
	InstNet       *int64   `json:"inst_net,omitempty"`       // 기관 순매수량
}

// Band52WPct returns the 52-week price band as a percentage of the low.
// Both bounds must be present and the low must be positive; otherwise
// the second return value is false.
func (m *TickerMetric) Band52WPct() (float64, bool) {
	if m.High52W == nil || m.Low52W == nil || *m.Low52W <= 0 {
		return 0, false
	}
	return (*m.High52W - *m.Low52W) / *m.Low52W * 100, true
}
