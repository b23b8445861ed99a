package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "insight",
	Short: "KRX Insight - 투자 성향 분석 & 종목 추천 엔진",
	Long: `KRX Insight Unified CLI

투자 성향 설문 분류, 성향별 종목 스코어링, BUY/HOLD/SELL 추세 신호를
하나의 CLI로 제공합니다. 시세 스냅샷은 수집 레이어가 만든 JSON 파일로
전달합니다.

Usage:
  go run ./cmd/insight [command]

Examples:
  go run ./cmd/insight api
  go run ./cmd/insight classify --answers answers.json
  go run ./cmd/insight recommend --snapshot snapshot.json --category stable
  go run ./cmd/insight signals --snapshot snapshot.json --window 1D`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
