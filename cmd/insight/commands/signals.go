package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/internal/snapshot"
	"github.com/sjlee/krx-insight/internal/trend"
)

// signalsCmd represents the signals command
var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "추세 신호 생성",
	Long: `시세 스냅샷을 읽어 종목별 추세 점수와 BUY/HOLD/SELL 신호를 생성합니다.

추세 점수 = 등락률(40%) + 거래량(20%) + 외국인 순매수(20%) + 기관 순매수(20%)
신호: 60점 이상 BUY, 40점 이상 HOLD, 미만 SELL

Example:
  go run ./cmd/insight signals --snapshot snapshot.json
  go run ./cmd/insight signals --snapshot snapshot.json --window 1W`,
	RunE: runSignals,
}

var (
	signalsSnapshot string
	signalsWindow   string
)

func init() {
	rootCmd.AddCommand(signalsCmd)

	// Flags
	signalsCmd.Flags().StringVar(&signalsSnapshot, "snapshot", "", "시세 스냅샷 JSON 파일")
	signalsCmd.Flags().StringVar(&signalsWindow, "window", "1D", "분석 기간 라벨 (1D, 1W, 1M)")
}

func runSignals(cmd *cobra.Command, args []string) error {
	if signalsSnapshot == "" {
		return fmt.Errorf("--snapshot flag is required")
	}

	log, err := newCLILogger()
	if err != nil {
		return err
	}

	records, err := snapshot.Load(signalsSnapshot)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	signals := trend.NewGenerator(log).Generate(records, signalsWindow)

	var buys, holds, sells int
	for _, sig := range signals {
		switch sig.Signal {
		case contracts.SignalBuy:
			buys++
		case contracts.SignalHold:
			holds++
		default:
			sells++
		}
	}

	fmt.Printf("=== 추세 신호 (%s) ===\n", signalsWindow)
	fmt.Printf("🟢 BUY: %d  🟡 HOLD: %d  🔴 SELL: %d\n\n", buys, holds, sells)

	for _, sig := range signals {
		fmt.Printf("%-8s %6.2f  %s\n", sig.Code, sig.TrendScore, sig.Signal)
	}

	return nil
}
