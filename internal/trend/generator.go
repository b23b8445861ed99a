package trend

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/pkg/logger"
)

// 추세 점수 가중치와 신호 경계값.
const (
	weightPrice   = 0.40
	weightVolume  = 0.20
	weightForeign = 0.20
	weightInst    = 0.20

	buyThreshold  = 60.0 // trend_score >= 60 → BUY
	holdThreshold = 40.0 // trend_score >= 40 → HOLD, 미만 → SELL

	// 등락률 ±30% 구간을 [0,100]으로 사상 (-30% → 0, 0% → 50, +30% → 100).
	pctScale = 50.0 / 30.0
)

// Generator computes per-ticker trend scores and BUY/HOLD/SELL signals.
// ⭐ SSOT: 추세 신호 계산은 여기서만
type Generator struct {
	logger *logger.Logger
}

// NewGenerator creates a new trend signal generator.
func NewGenerator(log *logger.Logger) *Generator {
	return &Generator{
		logger: log,
	}
}

// Generate computes a trend signal for every ticker in the snapshot.
//
// 네 개의 [0,100] 부분 점수(등락률/거래량/외국인/기관)를 가중 평균한다.
// 거래량 평균은 스냅샷 전체에서 한 번만 계산하므로 항상 완전한 스냅샷을
// 넘겨야 한다. window는 호출자 장부용 라벨이며 계산에는 쓰이지 않는다.
func (g *Generator) Generate(records []contracts.TickerMetric, window string) []contracts.TrendSignal {
	if len(records) == 0 {
		return []contracts.TrendSignal{}
	}

	volumes := make([]float64, len(records))
	for i := range records {
		volumes[i] = float64(records[i].Volume)
	}
	meanVolume := stat.Mean(volumes, nil)
	if meanVolume == 0 || math.IsNaN(meanVolume) {
		meanVolume = 1 // 0으로 나누기 방지
	}

	now := time.Now()
	signals := make([]contracts.TrendSignal, 0, len(records))
	var buys, holds, sells int

	for i := range records {
		record := &records[i]

		// ① 등락률 점수
		pct := 0.0
		if record.ChangePct != nil {
			pct = *record.ChangePct
		}
		priceScore := clamp(50 + pct*pctScale)

		// ② 거래량 점수 (평균 대비 비율, 평균 = 50점, 2배 = 100점)
		volumeScore := clamp(float64(record.Volume) / meanVolume * 50)

		// ③④ 외국인/기관 순매수 점수
		foreignScore := flowScore(record.ForeignNet)
		instScore := flowScore(record.InstNet)

		trendScore := round2(priceScore*weightPrice +
			volumeScore*weightVolume +
			foreignScore*weightForeign +
			instScore*weightInst)

		signal := SignalFor(trendScore)
		switch signal {
		case contracts.SignalBuy:
			buys++
		case contracts.SignalHold:
			holds++
		default:
			sells++
		}

		signals = append(signals, contracts.TrendSignal{
			Code:       record.Code,
			Window:     window,
			TrendScore: trendScore,
			Signal:     signal,
			AsOf:       now,
		})
	}

	g.logger.WithFields(map[string]interface{}{
		"window":  window,
		"tickers": len(signals),
		"buy":     buys,
		"hold":    holds,
		"sell":    sells,
	}).Info("Generated trend signals")

	return signals
}

// SignalFor maps a trend score to a trading signal. 경계는 하한 포함이라
// 정확히 60.00은 BUY, 정확히 40.00은 HOLD.
func SignalFor(trendScore float64) contracts.Signal {
	switch {
	case trendScore >= buyThreshold:
		return contracts.SignalBuy
	case trendScore >= holdThreshold:
		return contracts.SignalHold
	default:
		return contracts.SignalSell
	}
}

// flowScore scores investor net buying: 기준 50점에 순매수면 +50, 순매도면
// -30, 0이거나 결측이면 그대로 50.
func flowScore(net *int64) float64 {
	score := 50.0
	if net != nil {
		if *net > 0 {
			score += 50
		} else if *net < 0 {
			score -= 30
		}
	}
	return clamp(score)
}

// clamp bounds a score to [0,100].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
