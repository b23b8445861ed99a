package contracts

import "time"

// Signal is a three-state trading signal derived from the trend score.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalHold Signal = "HOLD"
	SignalSell Signal = "SELL"
)

// TrendSignal is the per-ticker momentum verdict for one snapshot.
// DB 스키마 (analysis_signals): ticker, as_of, window, trend_score, signal
type TrendSignal struct {
	Code       string    `json:"code"`
	Window     string    `json:"window"` // opaque label, e.g. "1D", "1W"
	TrendScore float64   `json:"trend_score"`
	Signal     Signal    `json:"signal"`
	AsOf       time.Time `json:"as_of"`
}
