package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sjlee/krx-insight/internal/analysis"
	"github.com/sjlee/krx-insight/internal/snapshot"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "시장 요약 통계",
	Long: `시세 스냅샷의 요약 통계를 출력합니다.

Example:
  go run ./cmd/insight summary --snapshot snapshot.json`,
	RunE: runSummary,
}

var (
	summarySnapshot string
)

func init() {
	rootCmd.AddCommand(summaryCmd)

	// Flags
	summaryCmd.Flags().StringVar(&summarySnapshot, "snapshot", "", "시세 스냅샷 JSON 파일")
}

func runSummary(cmd *cobra.Command, args []string) error {
	if summarySnapshot == "" {
		return fmt.Errorf("--snapshot flag is required")
	}

	records, err := snapshot.Load(summarySnapshot)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	s := analysis.Summarize(records)

	fmt.Println("=== 시장 요약 ===")
	fmt.Printf("분석 종목 수: %d\n", s.TotalCount)
	for _, market := range sortedMarkets(s.MarketCounts) {
		fmt.Printf("  %s: %d\n", market, s.MarketCounts[market])
	}
	fmt.Printf("상승: %d | 하락: %d | 보합: %d\n", s.Advancing, s.Declining, s.Flat)
	fmt.Printf("평균 등락률: %.2f%%\n", s.MeanPct)
	fmt.Printf("평균 거래량: %.0f\n", s.MeanVolume)
	if s.TopVolumeCode != "" {
		fmt.Printf("최대 거래량: %s (%s)\n", s.TopVolumeName, s.TopVolumeCode)
	}
	fmt.Printf("외국인 순매수/순매도: %d / %d\n", s.ForeignBuyers, s.ForeignSellers)
	fmt.Printf("기관 순매수/순매도: %d / %d\n", s.InstBuyers, s.InstSellers)

	return nil
}

// sortedMarkets returns the market names in a fixed order.
// map 순회 순서는 실행마다 달라서 출력이 흔들린다.
func sortedMarkets(counts map[string]int) []string {
	markets := make([]string, 0, len(counts))
	for market := range counts {
		markets = append(markets, market)
	}
	sort.Strings(markets)
	return markets
}
