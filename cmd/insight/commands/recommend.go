package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjlee/krx-insight/internal/contracts"
	"github.com/sjlee/krx-insight/internal/scoring"
	"github.com/sjlee/krx-insight/internal/snapshot"
	"github.com/sjlee/krx-insight/internal/survey"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "성향별 종목 추천",
	Long: `시세 스냅샷을 읽어 투자 성향에 맞는 종목 추천 점수를 계산합니다.

스냅샷 파일 형식 (JSON): TickerMetric 객체 배열.
성향은 slug(stable, stable-seeking, neutral, aggressive, offensive) 또는
한글명(안정형 등)으로 지정합니다.

Example:
  go run ./cmd/insight recommend --snapshot snapshot.json --category stable
  go run ./cmd/insight recommend --snapshot snapshot.json --category 공격투자형 --top 5`,
	RunE: runRecommend,
}

var (
	recommendSnapshot string
	recommendCategory string
	recommendTop      int
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	// Flags
	recommendCmd.Flags().StringVar(&recommendSnapshot, "snapshot", "", "시세 스냅샷 JSON 파일")
	recommendCmd.Flags().StringVar(&recommendCategory, "category", "neutral", "투자 성향")
	recommendCmd.Flags().IntVar(&recommendTop, "top", 10, "추천 종목 수 (0이면 전체)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendSnapshot == "" {
		return fmt.Errorf("--snapshot flag is required")
	}

	log, err := newCLILogger()
	if err != nil {
		return err
	}

	records, err := snapshot.Load(recommendSnapshot)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	category, err := contracts.ParseRiskCategory(recommendCategory)
	if err != nil {
		// 알 수 없는 성향은 스코어러와 같은 규칙으로 위험중립형 처리
		category = contracts.Neutral
	}

	scorer := scoring.NewScorer(log)
	var recommendations []contracts.Recommendation
	if recommendTop > 0 {
		recommendations = scorer.TopN(records, category, recommendTop)
	} else {
		recommendations = scorer.Score(records, category)
	}

	info := survey.Describe(category)
	fmt.Printf("=== %s %s 추천 종목 ===\n", info.Emoji, category)
	fmt.Printf("전략: %s\n", info.Strategy)
	fmt.Printf("대상: %d개 종목 / 추천 %d건\n\n", len(records), len(recommendations))

	for _, rec := range recommendations {
		fmt.Printf("%2d. %s (%s)  %.2f점\n", rec.Rank, rec.Name, rec.Code, rec.Score)
		fmt.Printf("    사유: %s\n", rec.Reason)
	}

	return nil
}
