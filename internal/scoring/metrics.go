package scoring

import (
	"math"

	"github.com/sjlee/krx-insight/internal/contracts"
)

// Metric identifies one normalized metric category referenced by weight profiles.
type Metric string

const (
	MetricDividendYield  Metric = "dividend_yield"  // 배당수익률 (높을수록 좋음)
	MetricMarketCapRank  Metric = "market_cap_rank" // 시가총액 순위 (대형주 = 높은 점수)
	MetricVolatilityLow  Metric = "volatility_low"  // 52주 변동폭 역순위 (낮을수록 안정적)
	MetricVolatilityHigh Metric = "volatility_high" // 52주 변동폭 순위 (높을수록 기회)
	MetricPBRLow         Metric = "pbr_low"         // PBR 역순위 (낮을수록 저평가)
	MetricInstNetBuy     Metric = "inst_net_buy"    // 기관 순매수
	MetricForeignNetBuy  Metric = "foreign_net_buy" // 외국인 순매수
	MetricPERFair        Metric = "per_fair"        // PER 적정 구간
	MetricVolumeRank     Metric = "volume_rank"     // 거래량 순위
	MetricChangeAbs      Metric = "change_abs"      // 등락률 절대값
)

// PER 적정 점수: perFairCenter에서 100점, 1 벗어날 때마다 perFairDecay점 감소.
const (
	perFairCenter = 15.0
	perFairDecay  = 5.0
)

// scoreTable holds the normalized [0,100] score columns for one snapshot.
// 정규화는 스냅샷 전체(corpus) 기준이므로 호출마다 새로 만든다.
type scoreTable struct {
	n       int
	columns map[Metric][]float64
}

// column returns the score column for a metric.
func (t *scoreTable) column(m Metric) ([]float64, bool) {
	col, ok := t.columns[m]
	return col, ok
}

// buildScoreTable computes every metric column from the snapshot.
// 스냅샷에 없는 지표는 전 종목 neutralScore로 대체해 스코어링이 죽지 않게 한다.
func buildScoreTable(records []contracts.TickerMetric) *scoreTable {
	n := len(records)
	t := &scoreTable{
		n:       n,
		columns: make(map[Metric][]float64),
	}

	dividends, dividendsPresent := optionalColumn(records, func(m *contracts.TickerMetric) *float64 {
		return m.DividendYield
	})
	t.setOptional(MetricDividendYield, false, dividends, dividendsPresent)

	caps, capsPresent := optionalColumn(records, func(m *contracts.TickerMetric) *float64 {
		return m.MarketCap
	})
	t.setOptional(MetricMarketCapRank, false, caps, capsPresent)

	pbrs, pbrsPresent := optionalColumn(records, func(m *contracts.TickerMetric) *float64 {
		return m.PBR
	})
	t.setOptional(MetricPBRLow, true, pbrs, pbrsPresent)

	inst, instPresent := optionalInt64Column(records, func(m *contracts.TickerMetric) *int64 {
		return m.InstNet
	})
	t.setOptional(MetricInstNetBuy, false, inst, instPresent)

	foreign, foreignPresent := optionalInt64Column(records, func(m *contracts.TickerMetric) *int64 {
		return m.ForeignNet
	})
	t.setOptional(MetricForeignNetBuy, false, foreign, foreignPresent)

	// 52주 변동폭은 한 번 계산해 순위/역순위 두 방향으로 쓴다.
	band := make([]float64, n)
	bandPresent := false
	for i := range records {
		if v, ok := records[i].Band52WPct(); ok {
			band[i] = v
			bandPresent = true
		}
	}
	t.setOptional(MetricVolatilityLow, true, band, bandPresent)
	t.setOptional(MetricVolatilityHigh, false, band, bandPresent)

	// 거래량은 필수 필드라 항상 존재한다.
	volumes := make([]float64, n)
	for i := range records {
		volumes[i] = float64(records[i].Volume)
	}
	t.columns[MetricVolumeRank] = normalizeColumn(volumes, false)

	changes, changesPresent := optionalColumn(records, func(m *contracts.TickerMetric) *float64 {
		return m.ChangePct
	})
	for i, v := range changes {
		changes[i] = math.Abs(v)
	}
	t.setOptional(MetricChangeAbs, false, changes, changesPresent)

	t.columns[MetricPERFair] = perFairColumn(records)

	return t
}

// setOptional normalizes a raw column, or fills it with neutralScore when the
// metric is absent from the whole snapshot.
func (t *scoreTable) setOptional(m Metric, descending bool, values []float64, present bool) {
	if !present {
		t.columns[m] = neutralColumn(t.n)
		return
	}
	t.columns[m] = normalizeColumn(values, descending)
}

// optionalColumn extracts an optional float column. 결측 행은 0으로 치환하고,
// 전 종목이 결측이면 present=false.
func optionalColumn(records []contracts.TickerMetric, get func(*contracts.TickerMetric) *float64) ([]float64, bool) {
	values := make([]float64, len(records))
	present := false
	for i := range records {
		if p := get(&records[i]); p != nil {
			values[i] = *p
			present = true
		}
	}
	return values, present
}

// optionalInt64Column is optionalColumn for int64-valued fields.
func optionalInt64Column(records []contracts.TickerMetric, get func(*contracts.TickerMetric) *int64) ([]float64, bool) {
	values := make([]float64, len(records))
	present := false
	for i := range records {
		if p := get(&records[i]); p != nil {
			values[i] = float64(*p)
			present = true
		}
	}
	return values, present
}

// perFairColumn scores PER against the fair-value band. 선형 정규화가 아니라
// perFairCenter 에서 멀어질수록 감소하는 비선형 점수이며, PER이 0 이하이거나
// 결측인 행은 0점이다. PER 컬럼 자체가 없으면 전 종목 neutralScore.
func perFairColumn(records []contracts.TickerMetric) []float64 {
	raw, present := optionalColumn(records, func(m *contracts.TickerMetric) *float64 {
		return m.PER
	})
	if !present {
		return neutralColumn(len(records))
	}

	scores := make([]float64, len(records))
	for i, per := range raw {
		if per > 0 {
			scores[i] = math.Max(0, 100-math.Abs(per-perFairCenter)*perFairDecay)
		}
	}
	return scores
}
