package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjlee/krx-insight/internal/snapshot"
	"github.com/sjlee/krx-insight/internal/survey"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "투자 성향 분류",
	Long: `설문 응답 파일을 읽어 투자 성향을 5단계로 분류합니다.

응답 파일 형식 (JSON):
  {"q1": 2, "q2": 4, "q3": 1, ...}
값은 선택지 인덱스(0-base)이며 빠진 문항은 첫 번째 선택지로 간주합니다.

Example:
  go run ./cmd/insight classify --answers answers.json
  go run ./cmd/insight classify --questions`,
	RunE: runClassify,
}

var (
	classifyAnswers   string
	classifyQuestions bool
)

func init() {
	rootCmd.AddCommand(classifyCmd)

	// Flags
	classifyCmd.Flags().StringVar(&classifyAnswers, "answers", "", "설문 응답 JSON 파일")
	classifyCmd.Flags().BoolVar(&classifyQuestions, "questions", false, "설문 문항만 출력")
}

func runClassify(cmd *cobra.Command, args []string) error {
	if classifyQuestions {
		printQuestions()
		return nil
	}

	if classifyAnswers == "" {
		return fmt.Errorf("--answers flag is required")
	}

	log, err := newCLILogger()
	if err != nil {
		return err
	}

	answers, err := snapshot.LoadAnswers(classifyAnswers)
	if err != nil {
		return fmt.Errorf("load answers: %w", err)
	}

	profile := survey.NewClassifier(log).Classify(answers)
	info := survey.Describe(profile.Category)

	fmt.Println("=== 투자 성향 분류 결과 ===")
	fmt.Printf("성향     : %s %s\n", info.Emoji, profile.Category)
	fmt.Printf("총점     : %d / %d (%.1f%%)\n", profile.TotalScore, profile.MaxScore, profile.Ratio*100)
	fmt.Printf("설명     : %s\n", info.Desc)
	fmt.Printf("추천 전략: %s\n", info.Strategy)

	return nil
}

func printQuestions() {
	fmt.Println("=== 투자 성향 설문 (11문항) ===")
	for i, q := range survey.Questions() {
		fmt.Printf("\n%d. [%s] %s\n", i+1, q.ID, q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("   %d) %s\n", j, opt.Label)
		}
	}
}
